package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ticketsFixture = `<?xml version="1.0" encoding="UTF-8"?>
<tickets>
  <ticket>
    <brand_id>5</brand_id>
    <attachments>
      <filename>log.txt</filename>
    </attachments>
    <custom_fields>
      <id>priority</id>
      <value>high</value>
    </custom_fields>
    <custom_fields>
      <id>region</id>
      <value>eu</value>
    </custom_fields>
  </ticket>
  <ticket>
    <brand_id>5</brand_id>
    <cc_users>
      <email>watcher@example.com</email>
    </cc_users>
  </ticket>
  <ticket>
    <custom_fields>
      <id>priority</id>
    </custom_fields>
  </ticket>
</tickets>
`

const usersFixture = `<?xml version="1.0" encoding="UTF-8"?>
<users>
  <user>
    <organization_id>10</organization_id>
  </user>
  <user/>
</users>
`

const organizationsFixture = `<?xml version="1.0" encoding="UTF-8"?>
<organizations>
  <organization/>
</organizations>
`

// writeDump lays out a complete dump directory.
func writeDump(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	writeFile(t, dir, TicketsFile, ticketsFixture)
	writeFile(t, dir, UsersFile, usersFixture)
	writeFile(t, dir, OrganizationsFile, organizationsFixture)

	return dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600)
	require.NoError(t, err)
}

func TestReadTickets(t *testing.T) {
	t.Parallel()

	tickets, err := ReadTickets(writeDump(t))

	require.NoError(t, err)
	require.Len(t, tickets, 3)

	first := tickets[0]
	require.NotNil(t, first.BrandID)
	assert.Equal(t, "5", *first.BrandID)
	require.Len(t, first.Attachments, 1)
	assert.Equal(t, "log.txt", first.Attachments[0].Filename)
	assert.Empty(t, first.CCUsers)
	require.Len(t, first.CustomFields, 2)
	assert.Equal(t, "priority", *first.CustomFields[0].ID)
	assert.Equal(t, "high", *first.CustomFields[0].Value)

	second := tickets[1]
	assert.Empty(t, second.Attachments)
	require.Len(t, second.CCUsers, 1)
	assert.Equal(t, "watcher@example.com", second.CCUsers[0].Email)

	third := tickets[2]
	assert.Nil(t, third.BrandID)
	require.Len(t, third.CustomFields, 1)
	assert.Nil(t, third.CustomFields[0].Value)
}

func TestReadUsers(t *testing.T) {
	t.Parallel()

	users, err := ReadUsers(writeDump(t))

	require.NoError(t, err)
	require.Len(t, users, 2)
	require.NotNil(t, users[0].OrganizationID)
	assert.Equal(t, "10", *users[0].OrganizationID)
	assert.Nil(t, users[1].OrganizationID)
}

func TestReadOrganizations(t *testing.T) {
	t.Parallel()

	organizations, err := ReadOrganizations(writeDump(t))

	require.NoError(t, err)
	assert.Len(t, organizations, 1)
}

func TestReadDump(t *testing.T) {
	t.Parallel()

	dump, err := ReadDump(writeDump(t))

	require.NoError(t, err)
	assert.Len(t, dump.Tickets, 3)
	assert.Len(t, dump.Users, 2)
	assert.Len(t, dump.Organizations, 1)
}

func TestReadDump_EmptyCollections(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	writeFile(t, dir, TicketsFile, `<tickets/>`)
	writeFile(t, dir, UsersFile, `<users/>`)
	writeFile(t, dir, OrganizationsFile, `<organizations/>`)

	dump, err := ReadDump(dir)

	require.NoError(t, err)
	assert.Empty(t, dump.Tickets)
	assert.Empty(t, dump.Users)
	assert.Empty(t, dump.Organizations)
}

func TestReadDump_MissingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	writeFile(t, dir, TicketsFile, ticketsFixture)
	// users.xml is missing.
	writeFile(t, dir, OrganizationsFile, organizationsFixture)

	_, err := ReadDump(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), UsersFile)
}

func TestReadDump_MalformedXML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	writeFile(t, dir, TicketsFile, `<tickets><ticket>`)
	writeFile(t, dir, UsersFile, usersFixture)
	writeFile(t, dir, OrganizationsFile, organizationsFixture)

	_, err := ReadDump(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse "+TicketsFile)
}

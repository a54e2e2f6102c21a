package export

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

// Input file names within a dump directory.
const (
	TicketsFile       = "tickets.xml"
	UsersFile         = "users.xml"
	OrganizationsFile = "organizations.xml"
)

type ticketsDoc struct {
	XMLName xml.Name `xml:"tickets"`
	Tickets []Ticket `xml:"ticket"`
}

type usersDoc struct {
	XMLName xml.Name `xml:"users"`
	Users   []User   `xml:"user"`
}

type organizationsDoc struct {
	XMLName       xml.Name       `xml:"organizations"`
	Organizations []Organization `xml:"organization"`
}

// ReadTickets reads and decodes tickets.xml from dir.
func ReadTickets(dir string) ([]Ticket, error) {
	var doc ticketsDoc

	err := readXML(dir, TicketsFile, &doc)
	if err != nil {
		return nil, err
	}

	return doc.Tickets, nil
}

// ReadUsers reads and decodes users.xml from dir.
func ReadUsers(dir string) ([]User, error) {
	var doc usersDoc

	err := readXML(dir, UsersFile, &doc)
	if err != nil {
		return nil, err
	}

	return doc.Users, nil
}

// ReadOrganizations reads and decodes organizations.xml from dir.
func ReadOrganizations(dir string) ([]Organization, error) {
	var doc organizationsDoc

	err := readXML(dir, OrganizationsFile, &doc)
	if err != nil {
		return nil, err
	}

	return doc.Organizations, nil
}

// ReadDump reads the three record collections from dir, failing fast on the
// first missing or malformed file. No partial dump is ever returned.
func ReadDump(dir string) (*Dump, error) {
	tickets, err := ReadTickets(dir)
	if err != nil {
		return nil, err
	}

	users, err := ReadUsers(dir)
	if err != nil {
		return nil, err
	}

	organizations, err := ReadOrganizations(dir)
	if err != nil {
		return nil, err
	}

	return &Dump{
		Tickets:       tickets,
		Users:         users,
		Organizations: organizations,
	}, nil
}

// readXML opens name inside dir and decodes it into doc.
func readXML(dir, name string, doc any) error {
	path := filepath.Join(dir, name)

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	defer file.Close()

	decodeErr := xml.NewDecoder(file).Decode(doc)
	if decodeErr != nil {
		return fmt.Errorf("parse %s: %w", name, decodeErr)
	}

	return nil
}

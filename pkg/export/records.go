// Package export provides the record model and reader for support-platform
// XML data dumps.
package export

// CustomField is one key/value pair attached to a ticket. Either side may be
// absent in the dump; entries missing an id or a value carry no information
// for the analysis.
type CustomField struct {
	ID    *string `xml:"id"`
	Value *string `xml:"value"`
}

// Attachment is one uploaded file reference on a ticket. Only its presence is
// consumed by the analysis.
type Attachment struct {
	Filename string `xml:"filename"`
}

// CCUser is one carbon-copied user on a ticket. Only its presence is
// consumed by the analysis.
type CCUser struct {
	Email string `xml:"email"`
}

// Ticket is one exported ticket record. All fields are optional in the dump;
// absent scalar fields decode to nil and absent collections to empty slices.
type Ticket struct {
	BrandID      *string       `xml:"brand_id"`
	Attachments  []Attachment  `xml:"attachments"`
	CCUsers      []CCUser      `xml:"cc_users"`
	CustomFields []CustomField `xml:"custom_fields"`
}

// User is one exported user record.
type User struct {
	OrganizationID *string `xml:"organization_id"`
}

// Organization is one exported organization record. The dump carries more
// detail, but only the record's existence is consumed.
type Organization struct{}

// Dump holds the three record collections read from one export.
type Dump struct {
	Tickets       []Ticket
	Users         []User
	Organizations []Organization
}

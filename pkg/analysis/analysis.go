// Package analysis computes aggregate statistics over one support-platform
// dump for migration planning.
package analysis

// Sentinel keys used when a record carries no identifier. The downstream
// migration tooling matches on these literals, so they are part of the
// output contract.
const (
	BrandUndefined   = "undefined"
	OrganizationNone = "none"
)

// TicketStats aggregates the ticket collection.
type TicketStats struct {
	Total           int            `json:"total" yaml:"total"`
	WithAttachments int            `json:"withAttachments" yaml:"withAttachments"`
	WithCCs         int            `json:"withCCs" yaml:"withCCs"`
	ByBrand         map[string]int `json:"byBrand" yaml:"byBrand"`
	CustomFields    []string       `json:"customFields" yaml:"customFields"`
}

// UserStats aggregates the user collection.
type UserStats struct {
	Total          int            `json:"total" yaml:"total"`
	ByOrganization map[string]int `json:"byOrganization" yaml:"byOrganization"`
}

// OrganizationStats aggregates the organization collection.
type OrganizationStats struct {
	Total int `json:"total" yaml:"total"`
}

// Analysis is the full result of one run. It is populated in a single pass
// and never mutated after serialization.
type Analysis struct {
	Tickets              TicketStats       `json:"tickets" yaml:"tickets"`
	Users                UserStats         `json:"users" yaml:"users"`
	Organizations        OrganizationStats `json:"organizations" yaml:"organizations"`
	EstimatedTimeMinutes int               `json:"estimatedTimeMinutes" yaml:"estimatedTimeMinutes"`
}

package analysis

import (
	"slices"

	"github.com/Sumatoshi-tech/deskfang/pkg/export"
)

// CountTicketStats aggregates ticket statistics in one pass. Counting is
// commutative, so the result does not depend on record order.
func CountTicketStats(tickets []export.Ticket) TicketStats {
	stats := TicketStats{
		ByBrand:      make(map[string]int),
		CustomFields: []string{},
	}

	fieldIDs := make(map[string]struct{})

	for _, ticket := range tickets {
		stats.Total++

		if len(ticket.Attachments) > 0 {
			stats.WithAttachments++
		}

		if len(ticket.CCUsers) > 0 {
			stats.WithCCs++
		}

		stats.ByBrand[orSentinel(ticket.BrandID, BrandUndefined)]++

		for _, field := range ticket.CustomFields {
			if present(field.ID) && present(field.Value) {
				fieldIDs[*field.ID] = struct{}{}
			}
		}
	}

	for id := range fieldIDs {
		stats.CustomFields = append(stats.CustomFields, id)
	}

	// Sorted for deterministic output; set semantics make order irrelevant.
	slices.Sort(stats.CustomFields)

	return stats
}

// CountUserStats aggregates user statistics in one pass.
func CountUserStats(users []export.User) UserStats {
	stats := UserStats{
		ByOrganization: make(map[string]int),
	}

	for _, user := range users {
		stats.Total++
		stats.ByOrganization[orSentinel(user.OrganizationID, OrganizationNone)]++
	}

	return stats
}

// CountOrganizationStats counts the organization records.
func CountOrganizationStats(organizations []export.Organization) OrganizationStats {
	return OrganizationStats{Total: len(organizations)}
}

// Run aggregates a full dump into an Analysis, processing tickets, users and
// organizations sequentially.
func Run(dump *export.Dump, requestsPerMinute int) (*Analysis, error) {
	tickets := CountTicketStats(dump.Tickets)
	users := CountUserStats(dump.Users)
	organizations := CountOrganizationStats(dump.Organizations)

	minutes, err := EstimateMigrationTime(tickets.Total, users.Total, organizations.Total, requestsPerMinute)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Tickets:              tickets,
		Users:                users,
		Organizations:        organizations,
		EstimatedTimeMinutes: minutes,
	}, nil
}

// present reports whether an optional dump field carries a value. The source
// platform exports absent fields both as missing elements and as empty ones.
func present(s *string) bool {
	return s != nil && *s != ""
}

// orSentinel returns the field value or the sentinel when absent.
func orSentinel(s *string, sentinel string) string {
	if present(s) {
		return *s
	}

	return sentinel
}

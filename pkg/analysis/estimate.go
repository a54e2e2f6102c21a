package analysis

import (
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/deskfang/pkg/mathutil"
)

// DefaultRequestsPerMinute is the migration API rate limit used when no
// override is configured.
const DefaultRequestsPerMinute = 75

// ErrInvalidRate is returned when the configured rate limit is not positive.
var ErrInvalidRate = errors.New("requests per minute must be positive")

// EstimateMigrationTime returns the whole minutes needed to push all records
// through a rate-limited migration API: ceil(total / requestsPerMinute).
// A zero record count yields zero minutes.
func EstimateMigrationTime(tickets, users, organizations, requestsPerMinute int) (int, error) {
	if requestsPerMinute <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRate, requestsPerMinute)
	}

	total := tickets + users + organizations

	return mathutil.CeilDiv(total, requestsPerMinute), nil
}

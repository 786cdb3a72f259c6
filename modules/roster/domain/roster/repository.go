package roster

import "context"

// Repository supplies the raw assignments of an inclusive date window.
// Dates are YYYY-MM-DD.
type Repository interface {
	FetchAssignments(ctx context.Context, startDate, endDate string) ([]RawAssignment, error)
}

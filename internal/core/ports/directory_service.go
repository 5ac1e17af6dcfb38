package ports

import (
	"context"

	"github.com/ruralroots/directory-api/internal/core/domain"
)

// AddFarmInput carries the farm-listing form fields. Tags is the raw
// comma-delimited input; parsing (trim, drop empties) happens in the
// store.
type AddFarmInput struct {
	Name        string
	Location    string
	Region      string
	Description string
	Tags        string
	Contact     string
	Website     string
	Image1      string
	Image2      string
}

// AddJobInput carries the job-posting form fields. FarmID is optional:
// when empty the poster's first owned farm (snapshot order) is used,
// preserving the original single-farm behavior; when set it must name a
// farm owned by the poster.
type AddJobInput struct {
	FarmID       string
	Title        string
	Type         string
	Description  string
	Requirements string
	Salary       string
}

// DirectoryService exposes the role-gated state transitions on the
// directory dataset. Every operation re-checks authorization against the
// store's own session, independent of any transport-level checks.
type DirectoryService interface {
	AddFarm(ctx context.Context, in AddFarmInput) (*domain.Farm, error)
	AddJob(ctx context.Context, in AddJobInput) (*domain.Job, error)
	AddReview(ctx context.Context, farmID string, rating int, text string) (*domain.Farm, error)
	ApplyToJob(ctx context.Context, jobID string) (*domain.Job, error)
	// Snapshot returns a deep copy of the current state for read-side
	// projections.
	Snapshot() *domain.Snapshot
}

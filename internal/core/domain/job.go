package domain

import (
	"errors"
	"slices"
	"time"
)

// JobType classifies the employment terms of a posting.
type JobType string

const (
	JobFullTime JobType = "full-time"
	JobPartTime JobType = "part-time"
	JobSeasonal JobType = "seasonal"
	JobContract JobType = "contract"
)

var ErrJobNotFound = errors.New("job not found")
var ErrNoFarmOwned = errors.New("no farm owned")

// ValidJobType reports whether t is a recognized job type.
func ValidJobType(t JobType) bool {
	switch t {
	case JobFullTime, JobPartTime, JobSeasonal, JobContract:
		return true
	}
	return false
}

// Job is a posting on the recruitment board. Applications holds applicant
// user ids in application order, each at most once; it is the only field
// that changes after creation (append-only, no withdrawal).
type Job struct {
	ID           string    `json:"id" bson:"id"`
	FarmID       string    `json:"farmId" bson:"farmId"`
	Title        string    `json:"title" bson:"title"`
	Type         JobType   `json:"type" bson:"type"`
	Description  string    `json:"description" bson:"description"`
	Requirements []string  `json:"requirements" bson:"requirements"`
	Salary       string    `json:"salary" bson:"salary"`
	Posted       time.Time `json:"posted" bson:"posted"`
	Applications []string  `json:"applications" bson:"applications"`
}

// Clone returns a deep copy sharing no slice backing arrays with j.
func (j Job) Clone() Job {
	j.Requirements = slices.Clone(j.Requirements)
	j.Applications = slices.Clone(j.Applications)
	return j
}

// HasApplicant reports whether userID already appears in Applications.
func (j *Job) HasApplicant(userID string) bool {
	for _, id := range j.Applications {
		if id == userID {
			return true
		}
	}
	return false
}

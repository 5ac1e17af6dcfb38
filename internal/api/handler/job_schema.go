package handler

import (
	"time"

	"github.com/ruralroots/directory-api/internal/core/domain"
)

type createJobRequest struct {
	// FarmID selects which owned farm the posting belongs to. Optional:
	// when empty the poster's first farm is used.
	FarmID       string `json:"farm_id"`
	Title        string `json:"title"        validate:"required"`
	Type         string `json:"type"         validate:"required,oneof=full-time part-time seasonal contract"`
	Description  string `json:"description"  validate:"required"`
	Requirements string `json:"requirements" validate:"required"`
	Salary       string `json:"salary"       validate:"required"`
}

type jobResponse struct {
	ID           string    `json:"id"`
	FarmID       string    `json:"farm_id"`
	FarmName     string    `json:"farm_name,omitempty"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Salary       string    `json:"salary"`
	Posted       time.Time `json:"posted"`
	Applications []string  `json:"applications"`
}

type listJobsResponse struct {
	Data  []jobResponse `json:"data"`
	Total int           `json:"total"`
}

func toJobResponse(j *domain.Job, farmName string) jobResponse {
	return jobResponse{
		ID:           j.ID,
		FarmID:       j.FarmID,
		FarmName:     farmName,
		Title:        j.Title,
		Type:         string(j.Type),
		Description:  j.Description,
		Requirements: j.Requirements,
		Salary:       j.Salary,
		Posted:       j.Posted,
		Applications: j.Applications,
	}
}

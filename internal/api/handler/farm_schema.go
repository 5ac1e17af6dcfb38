package handler

import (
	"time"

	"github.com/ruralroots/directory-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createFarmRequest struct {
	Name        string `json:"name"        validate:"required"`
	Location    string `json:"location"    validate:"required"`
	Region      string `json:"region"      validate:"required"`
	Description string `json:"description" validate:"required"`
	Tags        string `json:"tags"        validate:"required"`
	Contact     string `json:"contact"     validate:"required,email"`
	Website     string `json:"website"     validate:"required,url"`
	Image1      string `json:"image1"      validate:"omitempty,url"`
	Image2      string `json:"image2"      validate:"omitempty,url"`
}

type addReviewRequest struct {
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
	Text   string `json:"text"   validate:"required"`
}

// Response-only types owned by the transport layer. Kept separate from
// domain types so the JSON contract is not coupled to internal changes.

type reviewResponse struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	UserName string    `json:"user_name"`
	Text     string    `json:"text"`
	Rating   int       `json:"rating"`
	Date     time.Time `json:"date"`
}

type farmResponse struct {
	ID          string           `json:"id"`
	OwnerID     string           `json:"owner_id"`
	Name        string           `json:"name"`
	Location    string           `json:"location"`
	Region      string           `json:"region"`
	Description string           `json:"description"`
	Tags        []string         `json:"tags"`
	Rating      float64          `json:"rating"`
	Contact     string           `json:"contact"`
	Website     string           `json:"website"`
	Images      []string         `json:"images"`
	Reviews     []reviewResponse `json:"reviews"`
}

type listFarmsResponse struct {
	Data  []farmResponse `json:"data"`
	Total int            `json:"total"`
}

type farmMetaResponse struct {
	Tags    []string `json:"tags,omitempty"`
	Regions []string `json:"regions,omitempty"`
	Zones   []string `json:"zones,omitempty"`
}

func toFarmResponse(f *domain.Farm) farmResponse {
	reviews := make([]reviewResponse, 0, len(f.Reviews))
	for _, r := range f.Reviews {
		reviews = append(reviews, reviewResponse{
			ID:       r.ID,
			UserID:   r.UserID,
			UserName: r.UserName,
			Text:     r.Text,
			Rating:   r.Rating,
			Date:     r.Date,
		})
	}
	return farmResponse{
		ID:          f.ID,
		OwnerID:     f.OwnerID,
		Name:        f.Name,
		Location:    f.Location,
		Region:      f.Region,
		Description: f.Description,
		Tags:        f.Tags,
		Rating:      f.Rating,
		Contact:     f.Contact,
		Website:     f.Website,
		Images:      f.Images,
		Reviews:     reviews,
	}
}

func toFarmList(farms []domain.Farm) listFarmsResponse {
	data := make([]farmResponse, 0, len(farms))
	for i := range farms {
		data = append(data, toFarmResponse(&farms[i]))
	}
	return listFarmsResponse{Data: data, Total: len(data)}
}

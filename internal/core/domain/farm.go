package domain

import (
	"errors"
	"math"
	"slices"
	"strings"
	"time"
)

var ErrFarmNotFound = errors.New("farm not found")

// Review is a single customer review on a farm. Reviews are append-only
// and immutable once created. UserName is a denormalized copy of the
// author's name at submission time.
type Review struct {
	ID       string    `json:"id" bson:"id"`
	UserID   string    `json:"userId" bson:"userId"`
	UserName string    `json:"userName" bson:"userName"`
	Text     string    `json:"text" bson:"text"`
	Rating   int       `json:"rating" bson:"rating"`
	Date     time.Time `json:"date" bson:"date"`
}

// Farm is a listed farm profile.
//
// Rating is always the arithmetic mean of the review ratings rounded to
// two decimals, or 0 with no reviews. It is recomputed on every review
// append and never set independently.
type Farm struct {
	ID          string   `json:"id" bson:"id"`
	OwnerID     string   `json:"ownerId" bson:"ownerId"`
	Name        string   `json:"name" bson:"name"`
	Location    string   `json:"location" bson:"location"`
	Region      string   `json:"region" bson:"region"`
	Description string   `json:"description" bson:"description"`
	Tags        []string `json:"tags" bson:"tags"`
	Rating      float64  `json:"rating" bson:"rating"`
	Contact     string   `json:"contact" bson:"contact"`
	Website     string   `json:"website" bson:"website"`
	Images      []string `json:"images" bson:"images"`
	Reviews     []Review `json:"reviews" bson:"reviews"`
}

// Clone returns a deep copy sharing no slice backing arrays with f.
func (f Farm) Clone() Farm {
	f.Tags = slices.Clone(f.Tags)
	f.Images = slices.Clone(f.Images)
	f.Reviews = slices.Clone(f.Reviews)
	return f
}

// RegionalZones are the region choices offered when listing a farm,
// sorted ascending.
var RegionalZones = []string{
	"Africa",
	"Asia",
	"Central America",
	"Eurasia",
	"Europe",
	"North America",
	"South America",
	"The Middle East",
	"The Pacific",
}

// RecomputeRating returns the mean of the given review ratings rounded to
// two decimal places, or 0 for an empty slice.
func RecomputeRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*100) / 100
}

// ParseList splits a comma-delimited input into trimmed entries, dropping
// empties. Used for farm tags and job requirements.
func ParseList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

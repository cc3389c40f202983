package model

const (
	CategoryAll       = "all"
	CategoryBeach     = "beach"
	CategoryMountain  = "mountain"
	CategoryCultural  = "cultural"
	CategoryNature    = "nature"
	CategoryAdventure = "adventure"
)

// Categories lists every bookable destination category
var Categories = []string{CategoryBeach, CategoryMountain, CategoryCultural, CategoryNature, CategoryAdventure}

// DefaultRating is applied when a destination is stored without a rating
const DefaultRating = 4.5

// Destination represents a bookable trip offering
type Destination struct {
	ID          int      `json:"id"`
	Name        string   `json:"name" validate:"required,max=100"`
	Type        string   `json:"type" validate:"required,oneof=beach mountain cultural nature adventure"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"gt=0"`
	Duration    string   `json:"duration" validate:"required,max=50"`
	ImageURL    string   `json:"image_url" validate:"required,url"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	GuideName   string   `json:"guide_name" validate:"required"`
	MeetingSpot string   `json:"meeting_spot" validate:"required"`
	Inclusions  []string `json:"inclusions"`
	Exclusions  []string `json:"exclusions"`
}

// DestinationFilters contains filter parameters for destination queries
type DestinationFilters struct {
	Type   string // Category or "all"; any other value, "" included, matches that type literally
	Search string // Case-insensitive substring of name or description
}

// Review is a traveller review shown on the destination detail page
type Review struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// SampleReviews are shown for every destination until reviews are stored
var SampleReviews = []Review{
	{Name: "Priya S.", Rating: 5, Comment: "Amazing experience! The beaches were beautiful."},
	{Name: "Amit K.", Rating: 4, Comment: "Great trip, well organized."},
	{Name: "Sneha M.", Rating: 5, Comment: "Breathtaking views and excellent guides!"},
}

// DestinationDetail is a destination together with its reviews
type DestinationDetail struct {
	Destination
	Reviews []Review `json:"reviews"`
}

package workflow

import (
	"time"

	"github.com/google/uuid"
)

// SlideSpec is one outline entry. Specs are created by the outline stage and
// immutable afterward; the content and image stages only read them.
type SlideSpec struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// Slide is one finished slide. The content stage creates it, the image stage
// fills ImageURL in place.
type Slide struct {
	Title    string
	Bullets  []string
	Support  string
	ImageURL string
}

// State is the single mutable record threaded through the four stages of one
// generation run. It is owned by one Agent run at a time and discarded after
// rendering.
type State struct {
	Topic       string
	NumSlides   int
	Outline     []SlideSpec
	Slides      []*Slide
	HTML        string
	RunID       uuid.UUID
	GeneratedAt time.Time
}

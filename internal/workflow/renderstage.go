package workflow

import (
	"context"

	"github.com/ShadyGEE/slideshow-agent/internal/render"
)

// renderHTML produces the final document from the populated state. Rendering
// is deterministic; a template failure here is a programming error and aborts
// the run like a write failure would.
func (a *Agent) renderHTML(_ context.Context, state *State) (*State, error) {
	slides := make([]render.Slide, len(state.Slides))
	for i, s := range state.Slides {
		slides[i] = render.Slide{
			Title:    s.Title,
			Bullets:  s.Bullets,
			Support:  s.Support,
			ImageURL: s.ImageURL,
		}
	}

	html, err := render.HTML(state.Topic, slides)
	if err != nil {
		return state, err
	}
	state.HTML = html
	return state, nil
}

package workflow

import (
	"context"
	"strings"
)

// fetchImages attaches an image URL to every slide, in order. The lookup
// client falls back to a deterministic placeholder on its own, so this stage
// never fails and never leaves ImageURL empty. The seed is the slide's
// 1-based position, keeping repeated runs reproducible per slide.
func (a *Agent) fetchImages(ctx context.Context, state *State) (*State, error) {
	for i, slide := range state.Slides {
		query := imageQuery(slide.Title)
		if query == "" {
			query = state.Topic
		}
		slide.ImageURL = a.images.Lookup(ctx, query, i+1)
	}
	return state, nil
}

// imageQuery reduces a slide title to a plain search phrase: letters, digits
// and single spaces only.
func imageQuery(title string) string {
	var sb strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
			sb.WriteRune(r)
		default:
			sb.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

package workflow

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ShadyGEE/slideshow-agent/internal/extract"
)

const contentMaxTokens = 1500

func contentPrompt(spec SlideSpec) string {
	return fmt.Sprintf(`You are a content writer. Create content for a presentation slide titled "%s".
The slide covers: %s

Respond ONLY with valid JSON in this exact format:
{
    "bullet_points": ["Expanded point 1", "Expanded point 2", "Expanded point 3"],
    "supporting_text": "One short supporting paragraph. Light markdown emphasis is allowed."
}

No explanation, no markdown fences, just the JSON object.`, spec.Title, spec.Summary)
}

// generateContent builds one Slide per outline entry, in outline order. A
// failed completion or extraction degrades that slide to its spec's own
// title and summary; slides are never dropped or reordered.
func (a *Agent) generateContent(ctx context.Context, state *State) (*State, error) {
	slides := make([]*Slide, 0, len(state.Outline))
	for i, spec := range state.Outline {
		slides = append(slides, a.slideFor(ctx, state, i, spec))
	}
	state.Slides = slides
	return state, nil
}

func (a *Agent) slideFor(ctx context.Context, state *State, index int, spec SlideSpec) *Slide {
	raw, err := a.llm.Complete(ctx, contentPrompt(spec), contentMaxTokens)
	if err != nil {
		log.Printf("[run %s] content completion failed for slide %d: %v (using outline summary)", state.RunID, index+1, err)
		return degradedSlide(spec)
	}

	result := extract.JSON(raw)
	if !result.OK {
		log.Printf("[run %s] content extraction failed for slide %d: %s (using outline summary)", state.RunID, index+1, result.Reason)
		return degradedSlide(spec)
	}

	var payload struct {
		Bullets []string `json:"bullet_points"`
		Support string   `json:"supporting_text"`
	}
	if err := result.Decode(&payload); err != nil {
		log.Printf("[run %s] content payload unusable for slide %d (using outline summary)", state.RunID, index+1)
		return degradedSlide(spec)
	}

	bullets := make([]string, 0, len(payload.Bullets))
	for _, b := range payload.Bullets {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		bullets = append(bullets, b)
		if len(bullets) == a.cfg.Slideshow.MaxBullets {
			break
		}
	}
	if len(bullets) == 0 {
		return degradedSlide(spec)
	}

	return &Slide{
		Title:   spec.Title,
		Bullets: bullets,
		Support: strings.TrimSpace(payload.Support),
	}
}

// degradedSlide keeps the outline's title and reuses its summary as both the
// sole bullet and the supporting text.
func degradedSlide(spec SlideSpec) *Slide {
	return &Slide{
		Title:   spec.Title,
		Bullets: []string{spec.Summary},
		Support: spec.Summary,
	}
}

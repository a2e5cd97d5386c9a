package workflow

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ShadyGEE/slideshow-agent/internal/extract"
)

const outlineMaxTokens = 4000

func outlinePrompt(topic string, numSlides int) string {
	return fmt.Sprintf(`You are an expert presentation designer. Create an outline for a %d-slide presentation about "%s".

Respond ONLY with valid JSON in this exact format:
{
    "slides": [
        {"title": "Introduction to %s", "summary": "One-line description of the slide"},
        {"title": "Key Concepts", "summary": "One-line description of the slide"}
    ]
}

Return exactly %d entries. No explanation, no markdown, just the JSON object.`,
		numSlides, topic, topic, numSlides)
}

// createOutline asks the model for the slide outline and normalizes it to
// exactly NumSlides entries. Any client or parsing failure falls back to the
// deterministic template outline; this stage never fails the run.
func (a *Agent) createOutline(ctx context.Context, state *State) (*State, error) {
	raw, err := a.llm.Complete(ctx, outlinePrompt(state.Topic, state.NumSlides), outlineMaxTokens)
	if err != nil {
		log.Printf("[run %s] outline completion failed: %v (using template outline)", state.RunID, err)
		state.Outline = templateOutline(state.Topic, state.NumSlides)
		return state, nil
	}

	result := extract.JSON(raw)
	if !result.OK {
		log.Printf("[run %s] outline extraction failed: %s (using template outline)", state.RunID, result.Reason)
		state.Outline = templateOutline(state.Topic, state.NumSlides)
		return state, nil
	}

	var payload struct {
		Slides []SlideSpec `json:"slides"`
	}
	if err := result.Decode(&payload); err != nil || len(payload.Slides) == 0 {
		log.Printf("[run %s] outline payload unusable (using template outline)", state.RunID)
		state.Outline = templateOutline(state.Topic, state.NumSlides)
		return state, nil
	}

	state.Outline = normalizeOutline(state.Topic, payload.Slides, state.NumSlides)
	return state, nil
}

// templateOutline is the deterministic fallback when the model gives nothing
// usable: an introduction, numbered body slides, and a conclusion.
func templateOutline(topic string, numSlides int) []SlideSpec {
	outline := make([]SlideSpec, 0, numSlides)
	outline = append(outline, SlideSpec{
		Title:   "Introduction to " + topic,
		Summary: "Welcome, overview and agenda",
	})
	for i := 2; i < numSlides; i++ {
		outline = append(outline, SlideSpec{
			Title:   fmt.Sprintf("%s - Part %d", topic, i-1),
			Summary: fmt.Sprintf("Key points about %s", topic),
		})
	}
	if numSlides > 1 {
		outline = append(outline, SlideSpec{
			Title:   "Conclusion",
			Summary: "Summary and key takeaways",
		})
	}
	return outline
}

// normalizeOutline forces the model's outline to exactly numSlides entries:
// blank titles are skipped, extra entries dropped, and missing entries padded
// with overview fillers ending in a conclusion slide.
func normalizeOutline(topic string, specs []SlideSpec, numSlides int) []SlideSpec {
	outline := make([]SlideSpec, 0, numSlides)
	for _, spec := range specs {
		if len(outline) == numSlides {
			break
		}
		spec.Title = strings.TrimSpace(spec.Title)
		spec.Summary = strings.TrimSpace(spec.Summary)
		if spec.Title == "" {
			continue
		}
		if spec.Summary == "" {
			spec.Summary = fmt.Sprintf("Key points about %s", topic)
		}
		outline = append(outline, spec)
	}
	for len(outline) < numSlides {
		if len(outline) == numSlides-1 {
			outline = append(outline, SlideSpec{
				Title:   "Conclusion",
				Summary: fmt.Sprintf("Summary and key takeaways for %s", topic),
			})
			break
		}
		outline = append(outline, SlideSpec{
			Title:   fmt.Sprintf("%s - Overview %d", topic, len(outline)+1),
			Summary: fmt.Sprintf("Additional points about %s", topic),
		})
	}
	return outline
}

package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyGEE/slideshow-agent/internal/ai"
)

func TestGenerateContentParsesModelResponse(t *testing.T) {
	agent := testAgent(t, &ai.Mock{Responses: []string{
		`{"bullet_points":["alpha","beta"],"supporting_text":"because reasons"}`,
	}})
	state := &State{
		Topic:     "Topic",
		NumSlides: 1,
		Outline:   []SlideSpec{{Title: "First", Summary: "the first slide"}},
	}

	state, err := agent.generateContent(context.Background(), state)

	require.NoError(t, err)
	require.Len(t, state.Slides, 1)
	assert.Equal(t, "First", state.Slides[0].Title)
	assert.Equal(t, []string{"alpha", "beta"}, state.Slides[0].Bullets)
	assert.Equal(t, "because reasons", state.Slides[0].Support)
}

func TestGenerateContentDegradesOnFailure(t *testing.T) {
	agent := testAgent(t, &ai.Mock{Err: errors.New("unavailable")})
	state := &State{
		Topic:     "Topic",
		NumSlides: 2,
		Outline: []SlideSpec{
			{Title: "First", Summary: "summary one"},
			{Title: "Second", Summary: "summary two"},
		},
	}

	state, err := agent.generateContent(context.Background(), state)

	require.NoError(t, err)
	require.Len(t, state.Slides, 2)
	assert.Equal(t, "First", state.Slides[0].Title)
	assert.Equal(t, []string{"summary one"}, state.Slides[0].Bullets)
	assert.Equal(t, "summary one", state.Slides[0].Support)
	assert.Equal(t, "Second", state.Slides[1].Title)
}

func TestGenerateContentPreservesOrder(t *testing.T) {
	agent := testAgent(t, &ai.Mock{Responses: []string{
		`{"bullet_points":["a"],"supporting_text":""}`,
		`not parseable`,
		`{"bullet_points":["c"],"supporting_text":""}`,
	}})
	state := &State{
		Topic:     "Topic",
		NumSlides: 3,
		Outline: []SlideSpec{
			{Title: "One", Summary: "s1"},
			{Title: "Two", Summary: "s2"},
			{Title: "Three", Summary: "s3"},
		},
	}

	state, err := agent.generateContent(context.Background(), state)

	require.NoError(t, err)
	require.Len(t, state.Slides, 3)
	assert.Equal(t, "One", state.Slides[0].Title)
	assert.Equal(t, "Two", state.Slides[1].Title)
	assert.Equal(t, "Three", state.Slides[2].Title)
	assert.Equal(t, []string{"s2"}, state.Slides[1].Bullets) // degraded slide
}

func TestGenerateContentCapsBullets(t *testing.T) {
	agent := testAgent(t, &ai.Mock{Responses: []string{
		`{"bullet_points":["1","2","3","4","5","6","7","8"],"supporting_text":"x"}`,
	}})
	state := &State{
		Topic:     "Topic",
		NumSlides: 1,
		Outline:   []SlideSpec{{Title: "First", Summary: "s"}},
	}

	state, err := agent.generateContent(context.Background(), state)

	require.NoError(t, err)
	require.Len(t, state.Slides, 1)
	assert.Len(t, state.Slides[0].Bullets, 5)
}

func TestGenerateContentRejectsEmptyBullets(t *testing.T) {
	agent := testAgent(t, &ai.Mock{Responses: []string{
		`{"bullet_points":["  ", ""],"supporting_text":"x"}`,
	}})
	state := &State{
		Topic:     "Topic",
		NumSlides: 1,
		Outline:   []SlideSpec{{Title: "First", Summary: "fallback summary"}},
	}

	state, err := agent.generateContent(context.Background(), state)

	require.NoError(t, err)
	require.Len(t, state.Slides, 1)
	assert.Equal(t, []string{"fallback summary"}, state.Slides[0].Bullets)
}

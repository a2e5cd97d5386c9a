package workflow

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyGEE/slideshow-agent/internal/ai"
	"github.com/ShadyGEE/slideshow-agent/internal/config"
	"github.com/ShadyGEE/slideshow-agent/internal/images"
)

func TestNewAgentWithoutCredential(t *testing.T) {
	cfg := testConfig(t)
	cfg.AI = config.AIConfig{
		ActiveProvider: "gemini",
		Providers:      map[string]config.ProviderSettings{"gemini": {}},
	}

	_, err := NewAgent(cfg)

	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.ErrorIs(t, err, ai.ErrNoCredential)
}

func TestSanitizeTopic(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"Intro to Testing", "Intro_to_Testing"},
		{"Go: The Language!", "Go_The_Language"},
		{"  spaced   out  ", "spaced_out"},
		{"already_safe-topic", "already_safe-topic"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeTopic(tt.topic), "topic %q", tt.topic)
	}
}

// Both external clients unavailable: the run must still complete and produce
// a structurally valid slideshow on the fallback paths.
func TestGenerateEndToEndOffline(t *testing.T) {
	agent := testAgent(t, &ai.Mock{Err: errors.New("completions unavailable")})

	path, err := agent.Generate(context.Background(), "Intro to Testing", 3)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "slideshow_Intro_to_Testing_"))
	assert.True(t, strings.HasSuffix(path, ".html"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Equal(t, 3, strings.Count(out, "<section "))
	assert.Equal(t, 3, strings.Count(out, "picsum.photos"))
	assert.Contains(t, out, "Introduction to Intro to Testing")
	assert.Contains(t, out, "Conclusion")
	assert.Contains(t, out, `id="prev-btn" onclick="changeSlide(-1)" disabled`)
	assert.Contains(t, out, "currentSlide === totalSlides - 1")
}

func TestGenerateParsedPath(t *testing.T) {
	agent := testAgent(t, &ai.Mock{Responses: []string{
		`{"slides":[{"title":"Opening","summary":"s1"},{"title":"Closing","summary":"s2"}]}`,
		`{"bullet_points":["first point"],"supporting_text":"support one"}`,
		`{"bullet_points":["second point"],"supporting_text":"support two"}`,
	}})

	path, err := agent.Generate(context.Background(), "Demo", 2)

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Equal(t, 2, strings.Count(out, "<section "))
	assert.Contains(t, out, "Opening")
	assert.Contains(t, out, "Closing")
	assert.Contains(t, out, "first point")
	assert.Contains(t, out, "support two")
}

func TestGenerateClampsSlideCount(t *testing.T) {
	agent := testAgent(t, &ai.Mock{Err: errors.New("unavailable")})

	path, err := agent.Generate(context.Background(), "Big Deck", 500)

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.MaxSlides, strings.Count(string(data), "<section "))
}

func TestGenerateDefaultsSlideCount(t *testing.T) {
	agent := testAgent(t, &ai.Mock{Err: errors.New("unavailable")})

	path, err := agent.Generate(context.Background(), "Default Deck", 0)

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(string(data), "<section "))
}

func TestGenerateSurfacesWriteFailure(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(cfg.Slideshow.OutputDir, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	cfg.Slideshow.OutputDir = filepath.Join(blocker, "nested")

	agent, err := newAgent(cfg, &ai.Mock{Err: errors.New("unavailable")}, images.NewClient(""))
	require.NoError(t, err)

	_, err = agent.Generate(context.Background(), "Topic", 1)

	assert.Error(t, err)
}

// Package workflow runs the slideshow pipeline: a four-node state graph
// (outline, content, images, render) threading one State through each stage
// in order. Every stage falls back to degraded content rather than failing,
// so a run only aborts on missing configuration or a failed output write.
package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smallnest/langgraphgo/graph"

	"github.com/ShadyGEE/slideshow-agent/internal/ai"
	"github.com/ShadyGEE/slideshow-agent/internal/config"
	"github.com/ShadyGEE/slideshow-agent/internal/images"
)

// Agent generates slideshows. One Agent handles one run at a time; for
// concurrent runs build independent Agents.
type Agent struct {
	cfg    *config.Config
	llm    ai.Completer
	images *images.Client
	graph  *graph.StateRunnable[*State]
}

// NewAgent builds the agent and its stage graph. It fails with
// *ConfigurationError when no completion credential is configured.
func NewAgent(cfg *config.Config) (*Agent, error) {
	llm, err := ai.New(&cfg.AI)
	if err != nil {
		return nil, &ConfigurationError{Reason: "completion provider unavailable", Err: err}
	}
	return newAgent(cfg, llm, images.NewClient(cfg.Images.UnsplashKey))
}

func newAgent(cfg *config.Config, llm ai.Completer, img *images.Client) (*Agent, error) {
	a := &Agent{cfg: cfg, llm: llm, images: img}

	workflow := graph.NewStateGraph[*State]()
	workflow.AddNode("create_outline", "Builds the slide outline", a.createOutline)
	workflow.AddNode("generate_content", "Generates per-slide content", a.generateContent)
	workflow.AddNode("fetch_images", "Attaches an image to each slide", a.fetchImages)
	workflow.AddNode("render_html", "Renders the final document", a.renderHTML)

	workflow.SetEntryPoint("create_outline")
	workflow.AddEdge("create_outline", "generate_content")
	workflow.AddEdge("generate_content", "fetch_images")
	workflow.AddEdge("fetch_images", "render_html")
	workflow.AddEdge("render_html", graph.END)

	runnable, err := workflow.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile workflow graph: %w", err)
	}
	a.graph = runnable
	return a, nil
}

// Generate runs the full pipeline for a topic and writes the slideshow to
// the configured output directory, returning the file path. numSlides is
// clamped to [1, config.MaxSlides]; zero means the configured default.
func (a *Agent) Generate(ctx context.Context, topic string, numSlides int) (string, error) {
	if numSlides <= 0 {
		numSlides = a.cfg.Slideshow.Slides
	}
	if numSlides > config.MaxSlides {
		numSlides = config.MaxSlides
	}

	state := &State{
		Topic:       topic,
		NumSlides:   numSlides,
		RunID:       uuid.New(),
		GeneratedAt: time.Now(),
	}

	final, err := a.graph.Invoke(ctx, state)
	if err != nil {
		return "", fmt.Errorf("workflow run %s: %w", state.RunID, err)
	}

	filename := fmt.Sprintf("slideshow_%s_%s.html",
		sanitizeTopic(final.Topic), final.GeneratedAt.Format("20060102_150405"))

	outDir := a.cfg.Slideshow.OutputDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(outDir, filename)
	if err := os.WriteFile(path, []byte(final.HTML), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// sanitizeTopic keeps letters, digits, spaces, underscores and hyphens, then
// joins words with underscores for the output filename.
func sanitizeTopic(topic string) string {
	var sb strings.Builder
	for _, r := range topic {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ', r == '_', r == '-':
			sb.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(sb.String()), "_")
}

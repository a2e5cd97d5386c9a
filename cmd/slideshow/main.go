package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/ShadyGEE/slideshow-agent/internal/config"
	"github.com/ShadyGEE/slideshow-agent/internal/watch"
	"github.com/ShadyGEE/slideshow-agent/internal/workflow"
)

func main() {
	topic := flag.String("topic", "", "slideshow topic")
	slides := flag.Int("slides", 0, "number of slides (1-70, default from config)")
	out := flag.String("out", "", "output directory override")
	watchMode := flag.Bool("watch", false, "watch the topics directory instead of generating once")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if *out != "" {
		cfg.Slideshow.OutputDir = *out
	}

	agent, err := workflow.NewAgent(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	if *watchMode {
		observer := watch.NewObserver(cfg, agent, nil)
		if err := observer.Start(ctx); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *topic == "" {
		log.Fatal("a topic is required: slideshow -topic \"Intro to Testing\"")
	}

	path, err := agent.Generate(ctx, *topic, *slides)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Slideshow created: %s\n", path)
}

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/saintgo7/web-abada-pamout/internal/assist"
	"github.com/saintgo7/web-abada-pamout/internal/cli"
	"github.com/saintgo7/web-abada-pamout/internal/genai"
	"github.com/saintgo7/web-abada-pamout/internal/service"
	"github.com/saintgo7/web-abada-pamout/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	st := store.New()

	// Demo fixture data, since nothing persists across runs.
	if os.Getenv("PAMOUT_SEED") == "1" {
		service.Seed(st, time.Now().UTC())
	}

	app := &cli.App{
		Programs:  service.NewProgramService(st),
		Projects:  service.NewProjectService(st),
		Resources: service.NewResourceService(st),
		Tracking:  service.NewTrackingService(st),
		Dashboard: service.NewDashboardService(st),
	}

	// Wire the generative assistant only when an API key is configured.
	genaiCfg := genai.LoadConfig()
	var observer genai.Observer = genai.NoopObserver{}
	if genaiCfg.LogCalls {
		observer = genai.NewLogObserver(os.Stderr)
	}
	client, err := genai.NewClient(genaiCfg, observer)
	switch {
	case err == nil:
		app.Chat = assist.NewChatService(client)
		app.Video = assist.NewVideoService(client)
	case errors.Is(err, genai.ErrMissingAPIKey):
		// Assistant commands print a configuration hint.
	default:
		return err
	}

	return cli.NewRootCmd(app).Execute()
}

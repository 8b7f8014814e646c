package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-route-handler/internal/adapter"
	"github.com/MKhiriev/go-route-handler/internal/cli"
	"github.com/MKhiriev/go-route-handler/internal/config"
	"github.com/MKhiriev/go-route-handler/internal/logger"
	"github.com/MKhiriev/go-route-handler/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	version := fmt.Sprintf("%s (%s, %s)", buildInfo.BuildVersion(), buildInfo.BuildCommit(), buildInfo.BuildDate())

	c, err := cli.New(version)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err = c.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.NewConsoleLogger("notes-client")
	if err = logger.SetLevel(c.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	cfg, err := config.GetClientConfig(c.Overrides())
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = c.Execute(&cli.Context{Ctx: ctx, Adapter: serverAdapter, Stdout: os.Stdout})
	if err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "%s: %v\n", c.Command(), err)
		os.Exit(1)
	}
}

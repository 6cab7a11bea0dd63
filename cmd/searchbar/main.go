// Copyright 2025 SG AI Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	searchbar "github.com/SG-AI-Team/search-bar"
	"github.com/SG-AI-Team/search-bar/ai"
	"github.com/SG-AI-Team/search-bar/ingestion"
	"github.com/SG-AI-Team/search-bar/server"
)

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "searchbar",
		Usage: "Semantic retrieval service for schools and academic programs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the search API over HTTP",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "Listen address",
						Value:   ":8080",
					},
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "llm-host",
						Usage:   "OpenAI-compatible chat service host URL",
						Value:   "http://localhost:11434/v1",
						EnvVars: []string{"SEARCHBAR_LLM_HOST"},
					},
					&cli.StringFlag{
						Name:    "llm-token",
						Usage:   "Chat service token (\"none\" for local services)",
						Value:   "none",
						EnvVars: []string{"SEARCHBAR_LLM_TOKEN"},
					},
					&cli.StringFlag{
						Name:    "llm-model",
						Usage:   "Chat model for correction, extraction, and classification",
						Value:   "gpt-4o-mini",
						EnvVars: []string{"SEARCHBAR_LLM_MODEL"},
					},
				},
			},
			{
				Name:   "ingest",
				Usage:  "Refresh the searchable record set from the upstream platform",
				Action: ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "base-url",
						Usage:    "Upstream platform API base URL",
						Required: true,
						EnvVars:  []string{"SEARCHBAR_API_BASE_URL"},
					},
					&cli.StringFlag{
						Name:    "token",
						Usage:   "Bearer token for the upstream platform API",
						EnvVars: []string{"SEARCHBAR_API_TOKEN"},
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "HTTP timeout for upstream fetches",
						Value: 30 * time.Second,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand(c *cli.Context) error {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("llm-host")),
		ai.WithToken(c.String("llm-token")),
		ai.WithModel(c.String("llm-model")),
	)

	service, err := searchbar.NewService(c.String("db"), searchbar.WithAIConfig(aiConfig))
	if err != nil {
		return err
	}
	defer service.Close()

	// No vector index is provisioned here; searches return empty pages
	// until one is wired in via searchbar.WithIndex.
	slog.Warn("serving without a vector index, searches will return empty pages")

	searcher, err := service.NewSearcher()
	if err != nil {
		return err
	}

	srv := server.NewServer(searcher, slog.Default().With("component", "server"))

	addr := c.String("addr")
	slog.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, srv.Handler())
}

func ingestCommand(c *cli.Context) error {
	service, err := searchbar.NewService(c.String("db"))
	if err != nil {
		return err
	}
	defer service.Close()

	fetcherOpts := []ingestion.FetcherOption{
		ingestion.WithHTTPClient(&http.Client{Timeout: c.Duration("timeout")}),
	}
	if token := c.String("token"); token != "" {
		fetcherOpts = append(fetcherOpts, ingestion.WithBearerToken(token))
	}
	fetcher := ingestion.NewHTTPFetcher(c.String("base-url"), fetcherOpts...)

	pipeline, err := service.NewIngestionPipeline(fetcher)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	report, err := pipeline.Run(c.Context)
	if err != nil {
		return err
	}

	slog.Info("ingestion finished",
		"schools", report.Schools,
		"programs", report.Programs,
		"failed_types", strings.Join(report.FailedTypes, ","))
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

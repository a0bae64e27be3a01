// Copyright 2025 Poiesic Systems
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
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/poiesic/assessrec"
	"github.com/poiesic/assessrec/ai"
	"github.com/poiesic/assessrec/catalog"
	"github.com/poiesic/assessrec/catalog/badger"
	"github.com/poiesic/assessrec/eval"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "assessrec",
		Usage: "Assessment recommendation system",
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
				Name:   "import",
				Usage:  "Import a scraper JSON catalog into a BadgerDB snapshot",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "catalog",
						Aliases:  []string{"c"},
						Usage:    "Path to scraper JSON catalog file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
			{
				Name:      "recommend",
				Usage:     "Recommend assessments for a single query",
				ArgsUsage: "QUERY",
				Action:    recommendCommand,
				Flags: append(catalogFlags(),
					append(aiFlags(),
						&cli.IntFlag{
							Name:    "top-k",
							Aliases: []string{"k"},
							Usage:   "Number of assessments to recommend",
							Value:   10,
						},
					)...,
				),
			},
			{
				Name:   "evaluate",
				Usage:  "Measure mean recall@k against a ground-truth file",
				Action: evaluateCommand,
				Flags: append(catalogFlags(),
					append(aiFlags(),
						&cli.StringFlag{
							Name:     "truth",
							Aliases:  []string{"t"},
							Usage:    "Path to ground-truth file (.json or .csv)",
							Required: true,
						},
						&cli.IntFlag{
							Name:    "top-k",
							Aliases: []string{"k"},
							Usage:   "Recall cutoff",
							Value:   10,
						},
						&cli.IntFlag{
							Name:  "pool-size",
							Usage: "Concurrent evaluation workers (0 = auto)",
						},
					)...,
				),
			},
			{
				Name:   "serve",
				Usage:  "Serve recommendations over HTTP",
				Action: serveCommand,
				Flags: append(catalogFlags(),
					append(aiFlags(),
						&cli.StringFlag{
							Name:    "addr",
							Aliases: []string{"a"},
							Usage:   "Listen address",
							Value:   ":8080",
						},
					)...,
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func catalogFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "catalog",
			Aliases: []string{"c"},
			Usage:   "Path to scraper JSON catalog file",
		},
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB database directory (alternative to --catalog)",
		},
	}
}

func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "ai-host",
			Usage: "OpenAI-compatible service host URL (enables LLM assistance)",
		},
		&cli.StringFlag{
			Name:  "chat-model",
			Usage: "Chat model for query understanding and reranking",
			Value: "qwen2.5:3b",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.DurationFlag{
			Name:  "ai-timeout",
			Usage: "Per-request timeout for AI calls",
			Value: 30 * time.Second,
		},
		&cli.BoolFlag{
			Name:  "embedding-index",
			Usage: "Index the catalog with dense embeddings instead of TF-IDF",
		},
	}
}

// buildSystem constructs the recommendation system from either a JSON
// catalog file or a previously imported BadgerDB snapshot. The returned
// closer releases the snapshot backend when a database was used.
func buildSystem(ctx context.Context, c *cli.Context) (*assessrec.System, func(), error) {
	opts, err := systemOptions(c)
	if err != nil {
		return nil, nil, err
	}

	catalogPath := c.String("catalog")
	dbPath := c.String("db")
	switch {
	case catalogPath != "" && dbPath != "":
		return nil, nil, fmt.Errorf("--catalog and --db are mutually exclusive")
	case catalogPath != "":
		sys, err := assessrec.NewFromFile(ctx, catalogPath, opts...)
		if err != nil {
			return nil, nil, err
		}
		return sys, func() {}, nil
	case dbPath != "":
		backend, err := badger.OpenBackend(dbPath, false)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		repo, err := badger.NewRepository(backend)
		if err != nil {
			backend.Close()
			return nil, nil, fmt.Errorf("failed to create repository: %w", err)
		}
		sys, err := assessrec.NewFromRepository(ctx, repo, opts...)
		if err != nil {
			repo.Close()
			backend.Close()
			return nil, nil, err
		}
		closer := func() {
			repo.Close()
			backend.Close()
		}
		return sys, closer, nil
	default:
		return nil, nil, fmt.Errorf("either --catalog or --db is required")
	}
}

func systemOptions(c *cli.Context) ([]assessrec.SystemOption, error) {
	var opts []assessrec.SystemOption

	if host := c.String("ai-host"); host != "" {
		aiConfig := ai.NewConfig(
			ai.WithHost(host),
			ai.WithChatModel(c.String("chat-model")),
			ai.WithEmbeddingModel(c.String("embedding-model")),
			ai.WithRequestTimeout(c.Duration("ai-timeout")),
		)
		if err := aiConfig.Validate(); err != nil {
			return nil, fmt.Errorf("invalid AI configuration: %w", err)
		}
		opts = append(opts, assessrec.WithAIConfig(aiConfig))
	}

	if c.Bool("embedding-index") {
		if c.String("ai-host") == "" {
			return nil, fmt.Errorf("--embedding-index requires --ai-host")
		}
		opts = append(opts, assessrec.WithEmbeddingIndex())
	}

	return opts, nil
}

func importCommand(c *cli.Context) error {
	ctx := context.Background()

	cat, err := catalog.LoadFile(c.String("catalog"))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	if err := repo.PutCatalog(ctx, cat); err != nil {
		return fmt.Errorf("failed to store catalog: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Imported %d assessments into %s\n", cat.Len(), c.String("db"))
	return nil
}

func recommendCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a query argument is required")
	}

	sys, closer, err := buildSystem(ctx, c)
	if err != nil {
		return err
	}
	defer closer()
	defer sys.Close()

	results, err := sys.Recommend(ctx, query, c.Int("top-k"))
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	for i, candidate := range results {
		a := candidate.Assessment
		duration := "unknown"
		if a.Duration >= 0 {
			duration = fmt.Sprintf("%d min", a.Duration)
		}
		fmt.Printf("%2d. %-45s %s  %s  score=%.4f\n",
			i+1, a.Name, a.TestType, duration, candidate.FinalScore)
		fmt.Printf("    %s\n", a.Key)
	}
	return nil
}

func evaluateCommand(c *cli.Context) error {
	ctx := context.Background()

	truthPath := c.String("truth")
	var truth eval.GroundTruth
	var err error
	switch strings.ToLower(filepath.Ext(truthPath)) {
	case ".csv":
		truth, err = eval.LoadGroundTruthCSV(truthPath)
	default:
		truth, err = eval.LoadGroundTruthJSON(truthPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load ground truth: %w", err)
	}

	sys, closer, err := buildSystem(ctx, c)
	if err != nil {
		return err
	}
	defer closer()
	defer sys.Close()

	var runnerOpts []eval.RunnerOption
	if poolSize := c.Int("pool-size"); poolSize > 0 {
		runnerOpts = append(runnerOpts, eval.WithPoolSize(poolSize))
	}
	runner, err := sys.NewEvalRunner(runnerOpts...)
	if err != nil {
		return fmt.Errorf("failed to create evaluation runner: %w", err)
	}

	k := c.Int("top-k")
	summary, err := runner.Evaluate(ctx, truth, k)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	fmt.Printf("Mean Recall@%d: %.4f\n", k, summary.Mean)
	fmt.Printf("Min:            %.4f\n", summary.Min)
	fmt.Printf("Max:            %.4f\n", summary.Max)
	fmt.Printf("Median:         %.4f\n", summary.Median)
	fmt.Printf("StdDev:         %.4f\n", summary.StdDev)
	fmt.Printf("Evaluated:      %d\n", summary.Evaluated)
	fmt.Printf("Skipped:        %d\n", summary.Skipped)
	return nil
}

func serveCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sys, closer, err := buildSystem(ctx, c)
	if err != nil {
		return err
	}
	defer closer()
	defer sys.Close()

	srv := &http.Server{
		Addr:              c.String("addr"),
		Handler:           newServer(sys).routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving recommendations", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

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
	"os"
	"strings"

	"github.com/poiesic/lexindex"
	"github.com/poiesic/lexindex/ai"
	"github.com/poiesic/lexindex/ai/openai"
	"github.com/poiesic/lexindex/core"
	"github.com/poiesic/lexindex/ingestion"
	"github.com/poiesic/lexindex/match"
	"github.com/poiesic/lexindex/retrieve"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "lexindex",
		Usage: "Legal document indexing, retrieval, and template matching",
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
				Name:      "index",
				Usage:     "Build the vector index and metadata table from a corpus directory",
				ArgsUsage: "<corpus-root>",
				Action:    indexCommand,
				Flags: append(storageFlags(), append(embeddingFlags(),
					&cli.StringFlag{
						Name:  "index",
						Usage: "Output path for the vector index",
						Value: "corpus.index",
					},
					&cli.StringFlag{
						Name:  "metadata",
						Usage: "Output path for the chunk metadata table",
						Value: "metadata.json",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of chunks to embed per request",
						Value: ingestion.DefaultBatchSize,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for text extraction",
					})...),
			},
			{
				Name:      "query",
				Usage:     "Search the built index for chunks similar to a query",
				ArgsUsage: "<query text>",
				Action:    queryCommand,
				Flags: append(embeddingFlags(),
					&cli.StringFlag{
						Name:  "index",
						Usage: "Path to the vector index",
						Value: "corpus.index",
					},
					&cli.StringFlag{
						Name:  "metadata",
						Usage: "Path to the chunk metadata table",
						Value: "metadata.json",
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of neighbors to return",
						Value:   retrieve.DefaultTopK,
					}),
			},
			{
				Name:      "match",
				Usage:     "Match a case domain against a template category",
				ArgsUsage: "<case domain>",
				Action:    matchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "category",
						Aliases:  []string{"c"},
						Usage:    "Template category (contracts, criminal, civil, commercial, common, writs, family)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "templates",
						Aliases:  []string{"t"},
						Usage:    "Path to the templates root directory",
						Required: true,
					},
				},
			},
			{
				Name:   "docs",
				Usage:  "List registered documents from the last index run",
				Action: docsCommand,
				Flags: append(storageFlags(),
					&cli.StringFlag{
						Name:  "label",
						Usage: "Only show documents with this label",
					}),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func storageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to the document registry directory",
			Value:   "./lexindex_db",
		},
	}
}

func embeddingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "all-minilm",
		},
	}
}

func aiConfigFromFlags(c *cli.Context) (*ai.Config, error) {
	config := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	return config, nil
}

func indexCommand(c *cli.Context) error {
	ctx := context.Background()

	root := c.Args().First()
	if root == "" {
		return fmt.Errorf("corpus root directory is required")
	}

	aiConfig, err := aiConfigFromFlags(c)
	if err != nil {
		return err
	}

	lib, err := lexindex.NewLibrary(c.String("db"), lexindex.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open library: %w", err)
	}
	defer lib.Close()

	var opts []ingestion.IndexerOption
	opts = append(opts, ingestion.WithBatchSize(c.Int("batch-size")))
	if c.Int("pool-size") > 0 {
		opts = append(opts, ingestion.WithPoolSize(c.Int("pool-size")))
	}

	ix, err := lib.NewIndexer(opts...)
	if err != nil {
		return fmt.Errorf("failed to create indexer: %w", err)
	}
	defer ix.Release()

	if err := ix.BuildToFiles(ctx, root, c.String("index"), c.String("metadata")); err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Index written to %s\n", c.String("index"))
	fmt.Fprintf(os.Stderr, "Metadata written to %s\n", c.String("metadata"))
	return nil
}

func queryCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("query text is required")
	}

	aiConfig, err := aiConfigFromFlags(c)
	if err != nil {
		return err
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	r, err := retrieve.NewRetriever(embedder, c.String("index"), c.String("metadata"))
	if err != nil {
		return err
	}

	neighbors, err := r.Search(ctx, query, c.Int("top-k"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Found %d chunks\n", len(neighbors))
	for i, n := range neighbors {
		fmt.Printf("%d: %s [%0.4f]\n", i+1, n.Source, n.Distance)
		fmt.Printf("   %s\n", truncate(n.Text, 200))
	}
	return nil
}

func matchCommand(c *cli.Context) error {
	domain := strings.Join(c.Args().Slice(), " ")
	if domain == "" {
		return fmt.Errorf("case domain is required")
	}

	registry := match.NewRegistry(c.String("templates"))
	matcher, err := registry.Matcher(c.String("category"))
	if err != nil {
		return err
	}

	result, found, err := matcher.BestMatch(domain)
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("No template matched above the confidence threshold")
		return nil
	}

	fmt.Printf("Template: %s\n", result.Name)
	fmt.Printf("Score:    %.1f (name %d, content %d, bonus %.0f)\n",
		result.Score.Final, result.Score.NameScore,
		result.Score.ContentScore, result.Score.KeywordBonus)
	fmt.Printf("Source:   %s\n", result.Source)
	return nil
}

func docsCommand(c *cli.Context) error {
	ctx := context.Background()

	lib, err := lexindex.NewLibrary(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open library: %w", err)
	}
	defer lib.Close()

	repo := lib.DocumentRepository()
	var docs []*core.Document
	if label := c.String("label"); label != "" {
		docs, err = repo.GetDocumentsByLabel(ctx, label)
	} else {
		docs, err = repo.ListDocuments(ctx)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%d documents\n", len(docs))
	for _, doc := range docs {
		fmt.Printf("%d  %-10s %6d chars  chunks %d..%d  %s\n",
			doc.Id, doc.Label, doc.Chars,
			doc.ChunkStart, doc.ChunkStart+doc.ChunkCount-1,
			doc.Source)
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
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

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
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/poiesic/docstore"
	"github.com/poiesic/docstore/ingest"
	"github.com/poiesic/docstore/schema"
	"github.com/poiesic/docstore/storage"
	"github.com/poiesic/docstore/storage/badger"
	"github.com/tmc/langchaingo/textsplitter"
	"github.com/urfave/cli/v2"
)

func main() {
	dbFlag := &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB database directory",
		Required: true,
	}
	storeFlag := &cli.StringFlag{
		Name:    "store",
		Aliases: []string{"s"},
		Usage:   "Name of the document store snapshot",
		Value:   "default",
	}

	app := &cli.App{
		Name:  "docstore",
		Usage: "Keyed document store with snapshot persistence",
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
				Name:      "ingest",
				Usage:     "Ingest text files into a store and persist it",
				ArgsUsage: "FILE [FILE...]",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					dbFlag,
					storeFlag,
					&cli.IntFlag{
						Name:  "chunk-size",
						Usage: "Target chunk size in characters",
						Value: 512,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for document building",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Print record counts for a persisted store",
				Action: statsCommand,
				Flags:  []cli.Flag{dbFlag, storeFlag},
			},
			{
				Name:      "get",
				Usage:     "Print one record from a persisted store",
				ArgsUsage: "DOC_ID",
				Action:    getCommand,
				Flags:     []cli.Flag{dbFlag, storeFlag},
			},
			{
				Name:      "delete",
				Usage:     "Remove a record from a persisted store",
				ArgsUsage: "DOC_ID",
				Action:    deleteCommand,
				Flags:     []cli.Flag{dbFlag, storeFlag},
			},
			{
				Name:   "list",
				Usage:  "List persisted store snapshots",
				Action: listCommand,
				Flags:  []cli.Flag{dbFlag},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() == 0 {
		return fmt.Errorf("at least one input file is required")
	}

	snapshots, err := openSnapshotStore(c)
	if err != nil {
		return err
	}
	defer snapshots.Close()

	name := c.String("store")

	// Start from the persisted store if one exists, so re-ingesting only
	// rewrites changed documents.
	store, err := snapshots.LoadStore(ctx, name, schema.DefaultRegistry())
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to load store: %w", err)
		}
		store = docstore.New()
	}

	opts := []ingest.Option{
		ingest.WithSplitter(textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(c.Int("chunk-size")),
			textsplitter.WithChunkOverlap(c.Int("chunk-size") / 8),
		)),
	}
	if c.Int("pool-size") > 0 {
		opts = append(opts, ingest.WithPoolSize(c.Int("pool-size")))
	}
	pipeline, err := ingest.NewPipeline(store, opts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Close()

	for _, path := range c.Args().Slice() {
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		updated, err := pipeline.IngestText(path, string(text))
		if err != nil {
			return fmt.Errorf("failed to ingest %s: %w", path, err)
		}
		fmt.Printf("%s: %d documents written\n", path, len(updated))
	}

	if err := snapshots.SaveStore(ctx, name, store); err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}

	fmt.Printf("store %q saved with %d records\n", name, store.Len())
	return nil
}

func statsCommand(c *cli.Context) error {
	ctx := context.Background()

	snapshots, err := openSnapshotStore(c)
	if err != nil {
		return err
	}
	defer snapshots.Close()

	name := c.String("store")
	store, err := snapshots.LoadStore(ctx, name, schema.DefaultRegistry())
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	documents := 0
	indexStructs := 0
	for _, docID := range store.DocIDs() {
		record, _ := store.Lookup(docID)
		if _, ok := record.(schema.IndexStruct); ok {
			indexStructs++
		} else {
			documents++
		}
	}

	fmt.Printf("store:         %s\n", name)
	fmt.Printf("records:       %d\n", store.Len())
	fmt.Printf("documents:     %d\n", documents)
	fmt.Printf("index structs: %d\n", indexStructs)
	return nil
}

func getCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() != 1 {
		return fmt.Errorf("exactly one DOC_ID argument is required")
	}
	docID := c.Args().First()

	snapshots, err := openSnapshotStore(c)
	if err != nil {
		return err
	}
	defer snapshots.Close()

	store, err := snapshots.LoadStore(ctx, c.String("store"), schema.DefaultRegistry())
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	record, err := store.Get(docID)
	if err != nil {
		return err
	}

	fmt.Printf("doc_id: %s\n", record.ID())
	fmt.Printf("type:   %s\n", record.Type())
	fmt.Printf("hash:   %s\n", record.ContentHash())
	if doc, ok := record.(*schema.Document); ok {
		fmt.Printf("text:\n%s\n", doc.Text)
	}
	if indexStruct, ok := record.(schema.IndexStruct); ok {
		fmt.Printf("summary: %s\n", indexStruct.Summary())
	}
	return nil
}

func deleteCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() != 1 {
		return fmt.Errorf("exactly one DOC_ID argument is required")
	}
	docID := c.Args().First()

	snapshots, err := openSnapshotStore(c)
	if err != nil {
		return err
	}
	defer snapshots.Close()

	name := c.String("store")
	store, err := snapshots.LoadStore(ctx, name, schema.DefaultRegistry())
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	if _, err := store.Delete(docID); err != nil {
		return err
	}
	if err := snapshots.SaveStore(ctx, name, store); err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}

	fmt.Printf("deleted %s from store %q\n", docID, name)
	return nil
}

func listCommand(c *cli.Context) error {
	ctx := context.Background()

	snapshots, err := openSnapshotStore(c)
	if err != nil {
		return err
	}
	defer snapshots.Close()

	names, err := snapshots.ListStores(ctx)
	if err != nil {
		return fmt.Errorf("failed to list stores: %w", err)
	}

	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func openSnapshotStore(c *cli.Context) (storage.SnapshotStore, error) {
	dbPath := c.String("db")
	if dbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}

	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return badger.NewSnapshotStore(backend), nil
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

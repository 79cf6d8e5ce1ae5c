// Copyright 2026 Varnhold Labs
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
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/varnhold/lexent"
	"github.com/varnhold/lexent/core"
	"github.com/varnhold/lexent/search"
)

func main() {
	app := &cli.App{
		Name:   "lexent",
		Usage:  "Concept-based lexical search over JSON document collections",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Ingest a JSON document file into the index",
				ArgsUsage: "FILE",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to index database directory",
						Required: true,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search the index (or a one-off JSON document file)",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to index database directory",
					},
					&cli.StringFlag{
						Name:  "documents",
						Usage: "Search a JSON document file instead of the index",
					},
					&cli.StringFlag{
						Name:  "dict",
						Usage: "Path to JSON expansion dictionary",
						Value: "simplified_dictionary.json",
					},
					&cli.StringFlag{
						Name:  "lemmas",
						Usage: "Path to whitespace-delimited lemma table",
						Value: "lemmatize.tsv",
					},
					&cli.IntFlag{
						Name:    "max-hits",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results to print",
						Value:   10,
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Print the processed and expanded token preview",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one FILE argument")
	}

	ix, err := lexent.Open(c.String("db"))
	if err != nil {
		return err
	}
	defer ix.Close()

	count, err := ix.IngestFile(c.Context, c.Args().First())
	if err != nil {
		return err
	}

	fmt.Printf("Ingested %d documents\n", count)
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("expected a QUERY argument")
	}
	rawQuery := strings.Join(c.Args().Slice(), " ")

	docsPath := c.String("documents")
	dbPath := c.String("db")
	if docsPath == "" && dbPath == "" {
		return fmt.Errorf("either --db or --documents is required")
	}

	var monitor search.SearchMonitor
	if c.Bool("verbose") {
		monitor = &previewMonitor{out: os.Stderr}
	}

	maxHits := c.Int("max-hits")

	if docsPath != "" {
		results, err := searchFile(c, rawQuery, docsPath, maxHits, monitor)
		if err != nil {
			return err
		}
		printResults(results)
		return nil
	}

	ix, err := lexent.Open(dbPath,
		lexent.WithDictionaryFile(c.String("dict")),
		lexent.WithLemmaFile(c.String("lemmas")))
	if err != nil {
		return err
	}
	defer ix.Close()

	results, err := ix.SearchWithMonitor(c.Context, rawQuery, maxHits, monitor)
	if err != nil {
		return err
	}
	printResults(results)
	return nil
}

// searchFile runs the pipeline against a one-off JSON document file
// without touching the index store. A bad document file is fatal; bad
// lexical resource files only cost expansion quality.
func searchFile(c *cli.Context, rawQuery, docsPath string, maxHits int, monitor search.SearchMonitor) ([]*core.Result, error) {
	docs, err := core.LoadDocuments(docsPath)
	if err != nil {
		return nil, err
	}

	lex := lexent.LoadLexiconFiles(c.String("dict"), c.String("lemmas"))
	searcher, err := search.NewSearcher(lex)
	if err != nil {
		return nil, err
	}
	defer searcher.Release()

	results, err := searcher.SearchWithMonitor(c.Context, rawQuery, docs, monitor)
	if err != nil {
		return nil, err
	}
	if maxHits > 0 && len(results) > maxHits {
		results = results[:maxHits]
	}
	return results, nil
}

func printResults(results []*core.Result) {
	if len(results) == 0 {
		fmt.Println("No matches found.")
		return
	}

	fmt.Printf("Top %d matches:\n\n", len(results))
	for i, hit := range results {
		title := hit.Document.Title
		if title == "" {
			title = "N/A"
		}
		fmt.Printf("%d. [%3d] %s\n", i+1, hit.Score, title)
		if hit.Document.Description != "" {
			fmt.Printf("     %s\n", hit.Document.Description)
		}
		fmt.Println()
	}
}

// previewMonitor prints the intermediate pipeline state the way the
// engine's verbose mode always has: processed tokens, a capped expanded
// term preview, then a separator before the results.
type previewMonitor struct {
	out *os.File
}

var _ search.SearchMonitor = (*previewMonitor)(nil)

func (m *previewMonitor) Start(query string) {
	fmt.Fprintf(m.out, "Query:     %s\n", query)
}

func (m *previewMonitor) AfterNormalize(tokens []string) {
	fmt.Fprintf(m.out, "Processed: %v\n", tokens)
}

func (m *previewMonitor) AfterExpand(terms []string) {
	const previewLimit = 20
	suffix := ""
	if len(terms) > previewLimit {
		terms = terms[:previewLimit]
		suffix = "..."
	}
	fmt.Fprintf(m.out, "Expanded:  %v%s\n", terms, suffix)
	fmt.Fprintln(m.out, strings.Repeat("-", 60))
}

func (m *previewMonitor) DocumentScored(_ *core.Document, _ int) {}

func (m *previewMonitor) Finish(_ []*core.Result) {}

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

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


// Package lexent is a concept-based lexical search engine for
// small-to-medium in-memory document sets. Documents are ranked by
// exact-phrase matching, field-weighted token overlap, and a
// dictionary-driven synonym/lemma expansion.
//
// The Index type ties a persistent document store to the search
// pipeline. The pipeline itself (query, lexicon, search packages) is
// pure and can also be driven directly against document slices loaded
// from elsewhere.
package lexent

import (
	"context"
	"log/slog"

	"github.com/varnhold/lexent/core"
	"github.com/varnhold/lexent/lexicon"
	"github.com/varnhold/lexent/search"
	"github.com/varnhold/lexent/storage"
	"github.com/varnhold/lexent/storage/badger"
)

// Index combines a document store with the lexical resources and
// searcher needed to rank its contents.
type Index struct {
	backend  *badger.Backend
	docs     storage.DocumentRepository
	lexicon  *lexicon.Lexicon
	searcher *search.Searcher
	logger   *slog.Logger
}

// IndexOption configures an Index.
type IndexOption func(*indexOptions)

type indexOptions struct {
	dictPath  string
	lemmaPath string
	lexicon   *lexicon.Lexicon
	poolSize  int
}

// WithDictionaryFile loads the expansion dictionary from a JSON file.
// An unreadable or malformed file degrades to an empty dictionary with
// a warning; search proceeds with reduced expansion quality.
func WithDictionaryFile(path string) IndexOption {
	return func(o *indexOptions) { o.dictPath = path }
}

// WithLemmaFile loads the lemma table from a whitespace-delimited file.
// Same degradation contract as WithDictionaryFile.
func WithLemmaFile(path string) IndexOption {
	return func(o *indexOptions) { o.lemmaPath = path }
}

// WithLexicon supplies a pre-built lexicon, overriding the file options.
func WithLexicon(lex *lexicon.Lexicon) IndexOption {
	return func(o *indexOptions) { o.lexicon = lex }
}

// WithPoolSize sets the scoring worker pool size.
func WithPoolSize(size int) IndexOption {
	return func(o *indexOptions) { o.poolSize = size }
}

// Open opens (or creates) an index at the given database path.
func Open(dbPath string, opts ...IndexOption) (*Index, error) {
	options := &indexOptions{}
	for _, opt := range opts {
		opt(options)
	}

	logger := slog.Default()
	lex := options.lexicon
	if lex == nil {
		lex = loadLexicon(options, logger)
	}

	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return nil, err
	}

	docs, err := badger.NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	searchOpts := []search.Option{}
	if options.poolSize > 0 {
		searchOpts = append(searchOpts, search.WithPoolSize(options.poolSize))
	}
	searcher, err := search.NewSearcher(lex, searchOpts...)
	if err != nil {
		docs.Close()
		backend.Close()
		return nil, err
	}

	return &Index{
		backend:  backend,
		docs:     docs,
		lexicon:  lex,
		searcher: searcher,
		logger:   logger,
	}, nil
}

// loadLexicon builds the lexicon from the configured resource files.
// Load failures are warnings, not errors: the lexicon is advisory and
// search works with reduced recall when it is incomplete.
func loadLexicon(options *indexOptions, logger *slog.Logger) *lexicon.Lexicon {
	dict := map[string]string{}
	lemmas := map[string]string{}

	if options.dictPath != "" {
		var err error
		dict, err = lexicon.LoadDictionary(options.dictPath)
		if err != nil {
			logger.Warn("could not load dictionary", "path", options.dictPath, "err", err)
		}
	}
	if options.lemmaPath != "" {
		var err error
		lemmas, err = lexicon.LoadLemmaTable(options.lemmaPath)
		if err != nil {
			logger.Warn("could not load lemma table", "path", options.lemmaPath, "err", err)
		}
	}

	return lexicon.New(lemmas, dict)
}

// LoadLexiconFiles builds a lexicon from optional resource files.
// Empty paths are skipped; load failures are logged as warnings and
// degrade to empty tables. Use this for one-off searches that bypass
// the index store.
func LoadLexiconFiles(dictPath, lemmaPath string) *lexicon.Lexicon {
	return loadLexicon(&indexOptions{dictPath: dictPath, lemmaPath: lemmaPath}, slog.Default())
}

// Close releases the searcher pool and closes the store.
func (ix *Index) Close() error {
	ix.searcher.Release()

	if err := ix.docs.Close(); err != nil {
		ix.logger.Error("error closing document repository", "err", err)
		return err
	}
	if err := ix.backend.Close(); err != nil {
		ix.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// DocumentRepository exposes the underlying document store.
func (ix *Index) DocumentRepository() storage.DocumentRepository {
	return ix.docs
}

// Lexicon exposes the lexical resources the index searches with.
func (ix *Index) Lexicon() *lexicon.Lexicon {
	return ix.lexicon
}

// Searcher exposes the underlying searcher, for callers that want to
// rank document slices that are not in the store.
func (ix *Index) Searcher() *search.Searcher {
	return ix.searcher
}

// Add validates and stores documents. IDs are assigned from content, so
// adding the same document twice is an overwrite, not a duplicate.
func (ix *Index) Add(ctx context.Context, docs ...*core.Document) error {
	for _, doc := range docs {
		if err := core.ValidateDocument(doc); err != nil {
			return err
		}
	}
	_, err := ix.docs.AddDocuments(ctx, docs...)
	return err
}

// IngestFile loads a JSON document collection and stores it.
// Returns the number of documents stored.
func (ix *Index) IngestFile(ctx context.Context, path string) (int, error) {
	docs, err := core.LoadDocuments(path)
	if err != nil {
		return 0, err
	}
	if err := ix.Add(ctx, docs...); err != nil {
		return 0, err
	}
	return len(docs), nil
}

// Search ranks every stored document against the query. maxHits <= 0
// returns the full ranked list. An empty result is a valid outcome, not
// an error.
func (ix *Index) Search(ctx context.Context, rawQuery string, maxHits int) ([]*core.Result, error) {
	return ix.SearchWithMonitor(ctx, rawQuery, maxHits, nil)
}

// SearchWithMonitor ranks every stored document against the query with
// pipeline monitoring.
func (ix *Index) SearchWithMonitor(ctx context.Context, rawQuery string, maxHits int, monitor search.SearchMonitor) ([]*core.Result, error) {
	docs, err := ix.docs.AllDocuments(ctx)
	if err != nil {
		return nil, err
	}

	results, err := ix.searcher.SearchWithMonitor(ctx, rawQuery, docs, monitor)
	if err != nil {
		return nil, err
	}
	if maxHits > 0 && len(results) > maxHits {
		results = results[:maxHits]
	}
	return results, nil
}

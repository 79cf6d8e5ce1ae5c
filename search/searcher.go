package search

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/varnhold/lexent/core"
	"github.com/varnhold/lexent/lexicon"
	"github.com/varnhold/lexent/query"
)

// Searcher ranks document collections against free-text queries using
// the lexicon it was constructed with. It holds no per-query state and
// is safe for concurrent use.
type Searcher struct {
	lexicon *lexicon.Lexicon
	pool    *ants.Pool
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for the per-document scoring
// fan-out. Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 1 {
			size = 1
		}
		if s.pool != nil {
			s.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// NewSearcher creates a new searcher over the given lexicon.
func NewSearcher(lex *lexicon.Lexicon, opts ...Option) (*Searcher, error) {
	if lex == nil {
		return nil, ErrLexiconRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		lexicon: lex,
		pool:    pool,
		logger:  slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.Release()
			return nil, err
		}
	}

	return s, nil
}

// Release releases the scoring worker pool.
// The searcher should not be used after calling Release.
func (s *Searcher) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// Search ranks docs against the raw query. Documents with zero score
// are dropped; the rest are ordered by descending score, with ties
// preserving the input order of the collection. The result is never
// truncated; callers take a top-K slice as a presentation concern.
func (s *Searcher) Search(ctx context.Context, rawQuery string, docs []*core.Document) ([]*core.Result, error) {
	return s.SearchWithMonitor(ctx, rawQuery, docs, nil)
}

// SearchWithMonitor ranks docs against the raw query with monitoring.
// The monitor receives callbacks at each stage of the pipeline.
func (s *Searcher) SearchWithMonitor(ctx context.Context, rawQuery string, docs []*core.Document, monitor SearchMonitor) ([]*core.Result, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(rawQuery)

	// Normalize and expand once; both are read-only inputs shared by
	// every scoring worker.
	original := query.Normalize(rawQuery)
	monitor.AfterNormalize(original)

	expanded := query.Expand(original, s.lexicon)
	monitor.AfterExpand(expanded.Words())

	s.logger.Debug("query processed",
		"query", rawQuery,
		"tokens", len(original),
		"expandedTerms", expanded.Len(),
		"documents", len(docs))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Fan out one scoring task per document. Each worker writes only
	// its own slot, so no locking is needed.
	scores := make([]int, len(docs))
	var wg sync.WaitGroup
	for i := range docs {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			scores[i] = Score(docs[i], original, expanded)
		}
		if err := s.pool.Submit(task); err != nil {
			// Pool unavailable (e.g. released); score inline.
			task()
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Fan in: collect hits in input order so the stable sort below
	// breaks score ties by collection position.
	results := make([]*core.Result, 0, len(docs))
	for i, doc := range docs {
		monitor.DocumentScored(doc, scores[i])
		if scores[i] > 0 {
			results = append(results, &core.Result{Document: doc, Score: scores[i]})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	monitor.Finish(results)

	return results, nil
}

// SearchTop is a convenience wrapper that truncates the ranked list to
// at most maxHits results. maxHits <= 0 means no limit.
func (s *Searcher) SearchTop(ctx context.Context, rawQuery string, docs []*core.Document, maxHits int) ([]*core.Result, error) {
	results, err := s.Search(ctx, rawQuery, docs)
	if err != nil {
		return nil, err
	}
	if maxHits > 0 && len(results) > maxHits {
		results = results[:maxHits]
	}
	return results, nil
}

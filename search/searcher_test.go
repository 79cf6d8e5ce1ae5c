package search

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varnhold/lexent/core"
	"github.com/varnhold/lexent/lexicon"
)

func testLexicon() *lexicon.Lexicon {
	return lexicon.New(
		map[string]string{"running": "run"},
		map[string]string{"fast": "quick rapid"},
	)
}

func TestNewSearcher(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		searcher, err := NewSearcher(testLexicon())
		require.NoError(t, err)
		assert.NotNil(t, searcher)
		searcher.Release()
	})

	t.Run("with custom logger", func(t *testing.T) {
		searcher, err := NewSearcher(testLexicon(), WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
		searcher.Release()
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		searcher, err := NewSearcher(testLexicon(), WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
		searcher.Release()
	})

	t.Run("with pool size", func(t *testing.T) {
		searcher, err := NewSearcher(testLexicon(), WithPoolSize(4))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
		searcher.Release()
	})

	t.Run("pool size below one is clamped", func(t *testing.T) {
		searcher, err := NewSearcher(testLexicon(), WithPoolSize(0))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
		searcher.Release()
	})

	t.Run("nil lexicon", func(t *testing.T) {
		_, err := NewSearcher(nil)
		assert.Equal(t, ErrLexiconRequired, err)
	})
}

func TestSearch_Ranking(t *testing.T) {
	searcher, err := NewSearcher(testLexicon())
	require.NoError(t, err)
	defer searcher.Release()

	docs := []*core.Document{
		{Title: "slow boats", Content: "nothing relevant"},
		{Title: "fast cars", Description: "they go fast"},
		{Content: "a fast one"},
	}

	results, err := searcher.Search(context.Background(), "fast", docs)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Title match outranks content match; zero-score document dropped.
	assert.Same(t, docs[1], results[0].Document)
	assert.Same(t, docs[2], results[1].Document)
	assert.Greater(t, results[0].Score, results[1].Score)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Score, 1)
	}
}

func TestSearch_TieStability(t *testing.T) {
	searcher, err := NewSearcher(lexicon.Empty())
	require.NoError(t, err)
	defer searcher.Release()

	// All three documents score identically; ranked output must keep
	// their input order.
	docs := []*core.Document{
		{Title: "fast alpha"},
		{Title: "fast bravo"},
		{Title: "fast charlie"},
	}

	results, err := searcher.Search(context.Background(), "fast", docs)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Same(t, docs[0], results[0].Document)
	assert.Same(t, docs[1], results[1].Document)
	assert.Same(t, docs[2], results[2].Document)
}

func TestSearch_SortedNonIncreasing(t *testing.T) {
	searcher, err := NewSearcher(testLexicon())
	require.NoError(t, err)
	defer searcher.Release()

	docs := []*core.Document{
		{Content: "we run fast tests"},
		{Title: "fast running drills"},
		{Description: "fast delivery"},
		{Title: "quick results"},
		{Content: "unrelated text"},
	}

	results, err := searcher.Search(context.Background(), "fast running", docs)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestSearch_EmptyCollection(t *testing.T) {
	searcher, err := NewSearcher(testLexicon())
	require.NoError(t, err)
	defer searcher.Release()

	results, err := searcher.Search(context.Background(), "fast", nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_StopwordOnlyQuery(t *testing.T) {
	searcher, err := NewSearcher(testLexicon())
	require.NoError(t, err)
	defer searcher.Release()

	docs := []*core.Document{
		{Title: "the of and", Content: "full of stopwords"},
		{Title: "anything else"},
	}

	results, err := searcher.Search(context.Background(), "the of and", docs)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_Idempotent(t *testing.T) {
	searcher, err := NewSearcher(testLexicon(), WithPoolSize(8))
	require.NoError(t, err)
	defer searcher.Release()

	docs := make([]*core.Document, 0, 50)
	for i := 0; i < 50; i++ {
		docs = append(docs,
			&core.Document{Title: "fast running drills"},
			&core.Document{Content: "we run fast tests"},
		)
	}

	first, err := searcher.Search(context.Background(), "fast running", docs)
	require.NoError(t, err)
	second, err := searcher.Search(context.Background(), "fast running", docs)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Same(t, first[i].Document, second[i].Document)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}

func TestSearch_CancelledContext(t *testing.T) {
	searcher, err := NewSearcher(testLexicon())
	require.NoError(t, err)
	defer searcher.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = searcher.Search(ctx, "fast", []*core.Document{{Title: "fast"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_ReleasedPoolScoresInline(t *testing.T) {
	searcher, err := NewSearcher(testLexicon())
	require.NoError(t, err)
	searcher.Release()

	results, err := searcher.Search(context.Background(), "fast", []*core.Document{{Title: "fast cars"}})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchWithMonitor(t *testing.T) {
	searcher, err := NewSearcher(testLexicon())
	require.NoError(t, err)
	defer searcher.Release()

	docs := []*core.Document{
		{Title: "fast cars"},
		{Content: "nothing relevant"},
	}

	mon := &recordingMonitor{}
	results, err := searcher.SearchWithMonitor(context.Background(), "fast running", docs, mon)
	require.NoError(t, err)

	assert.Equal(t, "fast running", mon.query)
	assert.Equal(t, []string{"fast", "running"}, mon.tokens)
	assert.ElementsMatch(t, []string{"fast", "quick", "rapid", "running", "run"}, mon.terms)
	assert.Equal(t, len(docs), mon.scored)
	assert.Equal(t, len(results), mon.finished)
}

func TestSearchTop(t *testing.T) {
	searcher, err := NewSearcher(testLexicon())
	require.NoError(t, err)
	defer searcher.Release()

	docs := []*core.Document{
		{Title: "fast one"},
		{Title: "fast two"},
		{Title: "fast three"},
	}

	results, err := searcher.SearchTop(context.Background(), "fast", docs, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	all, err := searcher.SearchTop(context.Background(), "fast", docs, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

// recordingMonitor captures monitor callbacks for assertions.
type recordingMonitor struct {
	query    string
	tokens   []string
	terms    []string
	scored   int
	finished int
}

var _ SearchMonitor = (*recordingMonitor)(nil)

func (m *recordingMonitor) Start(query string)            { m.query = query }
func (m *recordingMonitor) AfterNormalize(tokens []string) { m.tokens = tokens }
func (m *recordingMonitor) AfterExpand(terms []string)     { m.terms = terms }
func (m *recordingMonitor) DocumentScored(_ *core.Document, _ int) {
	m.scored++
}
func (m *recordingMonitor) Finish(results []*core.Result) { m.finished = len(results) }

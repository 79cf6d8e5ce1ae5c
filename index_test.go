package lexent

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varnhold/lexent/core"
	"github.com/varnhold/lexent/lexicon"
)

func testIndex(t *testing.T, opts ...IndexOption) *Index {
	t.Helper()
	ix, err := Open(filepath.Join(t.TempDir(), "test_db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { ix.Close() })
	return ix
}

func TestOpen(t *testing.T) {
	t.Run("create new index", func(t *testing.T) {
		ix := testIndex(t)
		assert.NotNil(t, ix.DocumentRepository())
		assert.NotNil(t, ix.Lexicon())
		assert.NotNil(t, ix.Searcher())
	})

	t.Run("error with invalid path", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		require.NoError(t, os.WriteFile(tmpFile, []byte("test"), 0644))

		ix, err := Open(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, ix)
	})

	t.Run("missing lexical resources degrade to empty lexicon", func(t *testing.T) {
		ix := testIndex(t,
			WithDictionaryFile(filepath.Join(t.TempDir(), "missing.json")),
			WithLemmaFile(filepath.Join(t.TempDir(), "missing.tsv")))
		assert.Equal(t, 0, ix.Lexicon().LemmaCount())
		assert.Equal(t, 0, ix.Lexicon().DictionaryCount())
	})

	t.Run("explicit lexicon wins", func(t *testing.T) {
		lex := lexicon.New(map[string]string{"running": "run"}, nil)
		ix := testIndex(t, WithLexicon(lex))
		assert.Equal(t, 1, ix.Lexicon().LemmaCount())
	})
}

func TestIndex_AddAndSearch(t *testing.T) {
	lex := lexicon.New(
		map[string]string{"running": "run"},
		map[string]string{"fast": "quick rapid"},
	)
	ix := testIndex(t, WithLexicon(lex), WithPoolSize(2))
	ctx := context.Background()

	err := ix.Add(ctx,
		&core.Document{Title: "Quick results", Content: "we run fast tests"},
		&core.Document{Title: "fast running drills", Description: "training plans"},
		&core.Document{Title: "unrelated", Content: "gardening tips"},
	)
	require.NoError(t, err)

	results, err := ix.Search(ctx, "fast running", 0)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Verbatim title match collects the phrase bonus and both title
	// credits; the expansion-only document trails.
	assert.Equal(t, "fast running drills", results[0].Document.Title)
	assert.Equal(t, 90+70+70, results[0].Score)
	assert.Equal(t, "Quick results", results[1].Document.Title)
	assert.Equal(t, 65, results[1].Score)
}

func TestIndex_SearchMaxHits(t *testing.T) {
	ix := testIndex(t)
	ctx := context.Background()

	for _, title := range []string{"fast one", "fast two", "fast three"} {
		require.NoError(t, ix.Add(ctx, &core.Document{Title: title}))
	}

	results, err := ix.Search(ctx, "fast", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestIndex_SearchEmptyStore(t *testing.T) {
	ix := testIndex(t)

	results, err := ix.Search(context.Background(), "anything", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestIndex_AddInvalidDocument(t *testing.T) {
	ix := testIndex(t)

	err := ix.Add(context.Background(), &core.Document{})
	assert.ErrorIs(t, err, core.ErrEmptyDocument)
}

func TestIndex_IngestFile(t *testing.T) {
	ix := testIndex(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "docs.json")
	data := `[
		{"title": "First", "content": "alpha"},
		{"title": "Second", "content": "beta"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	count, err := ix.IngestFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	stored, err := ix.DocumentRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stored)
}

func TestIndex_IngestFile_BadSource(t *testing.T) {
	ix := testIndex(t)

	_, err := ix.IngestFile(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, core.ErrDocumentSource)
}

func TestIndex_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist_db")

	ix, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, ix.Add(context.Background(), &core.Document{Title: "durable fast data"}))
	require.NoError(t, ix.Close())

	ix, err = Open(dbPath)
	require.NoError(t, err)
	defer ix.Close()

	results, err := ix.Search(context.Background(), "durable", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "durable fast data", results[0].Document.Title)
}

func TestLoadLexiconFiles(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "dict.json")
	lemmaPath := filepath.Join(dir, "lemmas.tsv")
	require.NoError(t, os.WriteFile(dictPath, []byte(`{"fast": "quick"}`), 0644))
	require.NoError(t, os.WriteFile(lemmaPath, []byte("running run\n"), 0644))

	lex := LoadLexiconFiles(dictPath, lemmaPath)
	assert.Equal(t, []string{"quick"}, lex.Expansions("fast"))
	assert.Equal(t, "run", lex.Lemma("running"))

	// Missing files degrade silently
	lex = LoadLexiconFiles(filepath.Join(dir, "no.json"), "")
	assert.Equal(t, 0, lex.DictionaryCount())
}

package core

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// documentJSON is the on-disk shape of a document. Unknown keys in the
// source file are ignored.
type documentJSON struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// LoadDocuments reads a JSON array of documents from path.
// An unreadable or malformed source is fatal to the search call: the
// returned slice is empty and the error wraps ErrDocumentSource.
func LoadDocuments(path string) ([]*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentSource, err)
	}
	defer f.Close()
	return DecodeDocuments(f)
}

// DecodeDocuments reads a JSON array of documents from r.
func DecodeDocuments(r io.Reader) ([]*Document, error) {
	var raw []documentJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentSource, err)
	}

	docs := make([]*Document, len(raw))
	for i, d := range raw {
		docs[i] = &Document{
			Title:       d.Title,
			Description: d.Description,
			Content:     d.Content,
		}
	}
	return docs, nil
}

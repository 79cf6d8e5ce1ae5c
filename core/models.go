package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored documents.
// It is generated from document content so that re-ingesting the same
// corpus produces the same IDs.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Document is a searchable record with up to three text fields.
// All fields are optional; an empty field simply contributes nothing to
// scoring. Documents are immutable inputs to the search pipeline.
type Document struct {
	Id          ID
	Title       string
	Description string
	Content     string
}

// ContentKey returns the string hashed to produce the document's
// content-based ID. Fields are NUL-separated so that text shifting
// between fields changes the key.
func (d *Document) ContentKey() string {
	return d.Title + "\x00" + d.Description + "\x00" + d.Content
}

// FullText returns the lowercase concatenation of title, description and
// content, joined by single spaces. This is the haystack for the
// exact-phrase bonus.
func (d *Document) FullText() string {
	return strings.ToLower(d.Title) + " " + strings.ToLower(d.Description) + " " + strings.ToLower(d.Content)
}

// Result is a single ranked search hit. Score is always >= 1 in ranked
// output; documents that match nothing are dropped before ranking.
type Result struct {
	Document *Document
	Score    int
}

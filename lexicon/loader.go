package lexicon

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadDictionary reads an expansion dictionary from a JSON object file
// mapping word -> space-separated related terms.
//
// On failure it returns an empty map together with the error so that
// search can proceed with reduced expansion quality. Surfacing the
// error as a warning is the caller's responsibility.
func LoadDictionary(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return map[string]string{}, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	return DecodeDictionary(f)
}

// DecodeDictionary reads a JSON expansion dictionary from r.
func DecodeDictionary(r io.Reader) (map[string]string, error) {
	dict := map[string]string{}
	if err := json.NewDecoder(r).Decode(&dict); err != nil {
		return map[string]string{}, fmt.Errorf("decode dictionary: %w", err)
	}
	return dict, nil
}

// LoadLemmaTable reads a lemma table from a whitespace-delimited file
// with one (word, lemma) pair per line. Blank lines and lines with
// fewer than two fields are skipped. Same degradation contract as
// LoadDictionary.
func LoadLemmaTable(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return map[string]string{}, fmt.Errorf("open lemma table: %w", err)
	}
	defer f.Close()
	return DecodeLemmaTable(f)
}

// DecodeLemmaTable reads a whitespace-delimited lemma table from r.
func DecodeLemmaTable(r io.Reader) (map[string]string, error) {
	lemmas := map[string]string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		lemmas[fields[0]] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return map[string]string{}, fmt.Errorf("read lemma table: %w", err)
	}
	return lemmas, nil
}

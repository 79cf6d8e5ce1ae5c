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


// Package search ranks documents against a free-text query.
//
// The Searcher type implements a field-weighted lexical scoring
// algorithm that combines:
//   - An exact-phrase bonus when the normalized query appears verbatim
//     in a document's concatenated text
//   - Literal term matching, weighted by field (title > description > content)
//   - Lemma and dictionary-expansion matching at much lower weights, so
//     synonym noise cannot dominate literal hits
//
// Scoring of each document is independent, so the ranker fans out over
// a worker pool and fans back in before sorting. Results are ordered by
// descending score; ties preserve the input order of the collection.
package search

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


// Package lexicon provides the static lexical resources used for query
// expansion: a lemma table mapping surface words to canonical forms, and
// an expansion dictionary mapping words to related terms.
//
// Both resources are advisory. A missing entry falls back to identity
// (a word is its own lemma, with no expansions), and an unreadable or
// malformed source degrades to an empty table rather than failing the
// search. Callers decide whether to surface the load error as a warning.
//
// A Lexicon is immutable after construction and safe for concurrent
// readers.
package lexicon

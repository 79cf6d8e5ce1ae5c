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


// Package query turns a raw query string into the two term collections
// the scorer consumes:
//
//   - Normalize produces the ordered sequence of emphasis-bearing
//     tokens, with punctuation stripped and stopwords removed. Order
//     and duplicates are preserved because the exact-phrase bonus needs
//     a faithful reconstruction of the query.
//   - Expand broadens those tokens into an unordered term set using the
//     lexicon's lemma table and expansion dictionary.
package query

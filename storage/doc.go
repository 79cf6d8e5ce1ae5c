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


// Package storage provides the storage abstraction layer for lexent.
//
// It defines the DocumentRepository interface that decouples the search
// pipeline from the persistence backend, so different backends (BadgerDB,
// in-memory, etc.) can be used interchangeably. Public constructors in
// backend packages return the interface type, not the concrete type.
//
// Repositories preserve insertion order: AllDocuments returns documents
// in the order they were first added, because ranking breaks score ties
// by collection position.
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines. All methods accept a
// context.Context for cancellation and timeout support.
package storage

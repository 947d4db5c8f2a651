// Package domain defines the core domain types shared across the analysis pipeline.
//
// This package contains concept-oriented files (sentiment.go, input.go, result.go)
// with shared types only. No implementation code - just the data model every
// pipeline stage agrees on. Prevents circular imports by keeping the vocabulary
// in one dependency-free place.
package domain

// Package generator builds word lists for typing runs.
package generator

import (
	"math/rand"
	"time"
)

// Generator draws random words from a vocabulary.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a fixed seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate selects count words uniformly, with replacement.
func (g *Generator) Generate(words []string, count int) []string {
	if count <= 0 || len(words) == 0 {
		return []string{}
	}
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, words[g.rnd.Intn(len(words))])
	}
	return result
}

// Source binds a Generator to a fixed vocabulary.
type Source struct {
	gen   *Generator
	words []string
}

// NewSource returns a Source drawing from a copy of words.
func NewSource(gen *Generator, words []string) *Source {
	return &Source{gen: gen, words: append([]string(nil), words...)}
}

// Generate returns count random words from the bound vocabulary.
func (s *Source) Generate(count int) []string {
	return s.gen.Generate(s.words, count)
}

// Vocabulary returns a copy of the bound words.
func (s *Source) Vocabulary() []string {
	return append([]string(nil), s.words...)
}

// Package partialstore provides two runtime.PartialStore implementations:
// Store, an in-memory name-to-source map, and FileStore, backed by a
// directory on disk. Both parse each partial lazily on first use and
// cache the parsed result; FileStore re-parses a file whose modification
// time has advanced, and does not cache at all in development mode.
package partialstore

import (
	"sort"
	"sync"

	"github.com/codingersid/legit-liquid/errors"
	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/parser"
	"github.com/codingersid/legit-liquid/runtime"
)

// Store maps partial names to template source, parsing each against a
// fixed Language the first time it's requested. It is safe for
// concurrent use: parsing a given name happens at most once even if
// two renders request it simultaneously.
type Store struct {
	lang *language.Language

	mu      sync.Mutex
	sources map[string]string
	parsed  map[string]runtime.Renderable
}

// New builds a Store that parses partials against lang on first access.
func New(lang *language.Language) *Store {
	return &Store{
		lang:    lang,
		sources: make(map[string]string),
		parsed:  make(map[string]runtime.Renderable),
	}
}

// Add registers (or overwrites) a partial's source text. Overwriting an
// already-parsed name invalidates its cached template.
func (s *Store) Add(name, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources[name] = source
	delete(s.parsed, name)
}

// Get implements runtime.PartialStore.
func (s *Store) Get(name string) (runtime.Renderable, error) {
	r, ok := s.TryGet(name)
	if !ok {
		return nil, &errors.RenderError{
			Message: "Partial does not exist",
			Context: []errors.Context{{Key: "name", Value: name}},
		}
	}
	return r, nil
}

// TryGet implements runtime.PartialStore.
func (s *Store) TryGet(name string) (runtime.Renderable, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tmpl, ok := s.parsed[name]; ok {
		return tmpl, true
	}
	src, ok := s.sources[name]
	if !ok {
		return nil, false
	}
	tmpl, err := parser.ParseString(src, s.lang)
	if err != nil {
		return nil, false
	}
	s.parsed[name] = tmpl.Root
	return tmpl.Root, true
}

// Contains implements runtime.PartialStore.
func (s *Store) Contains(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sources[name]
	return ok
}

// Names implements runtime.PartialStore, sorted for deterministic error
// context and documentation listings.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.sources))
	for k := range s.sources {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var _ runtime.PartialStore = (*Store)(nil)

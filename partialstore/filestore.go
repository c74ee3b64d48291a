package partialstore

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/codingersid/legit-liquid/errors"
	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/parser"
	"github.com/codingersid/legit-liquid/runtime"
)

type fileCacheEntry struct {
	tmpl    runtime.Renderable
	modTime time.Time
}

// FileStore is a runtime.PartialStore backed by a directory tree on
// disk: a partial named "layouts/base" resolves to
// "<dir>/layouts/base<extension>", parsed on first use and cached by
// modification time thereafter. Development mode disables the cache so
// edits are picked up without restarting the process.
type FileStore struct {
	dir         string
	extension   string
	lang        *language.Language
	development bool

	mu    sync.RWMutex
	cache map[string]fileCacheEntry
}

// FileStoreOption configures a FileStore at construction time.
type FileStoreOption func(*FileStore)

// WithExtension overrides the default ".liquid" file extension.
func WithExtension(ext string) FileStoreOption {
	return func(s *FileStore) {
		if ext != "" && ext[0] != '.' {
			ext = "." + ext
		}
		s.extension = ext
	}
}

// WithDevelopment disables the modification-time cache, re-reading and
// re-parsing every partial from disk on every lookup.
func WithDevelopment(dev bool) FileStoreOption {
	return func(s *FileStore) { s.development = dev }
}

// NewFileStore returns a FileStore rooted at dir, parsing partials
// against lang.
func NewFileStore(dir string, lang *language.Language, opts ...FileStoreOption) *FileStore {
	s := &FileStore{
		dir:       dir,
		extension: ".liquid",
		lang:      lang,
		cache:     make(map[string]fileCacheEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, filepath.FromSlash(name)+s.extension)
}

// Get implements runtime.PartialStore.
func (s *FileStore) Get(name string) (runtime.Renderable, error) {
	r, ok := s.TryGet(name)
	if !ok {
		return nil, &errors.RenderError{
			Message: "Partial does not exist",
			Context: []errors.Context{{Key: "name", Value: name}, {Key: "path", Value: s.path(name)}},
		}
	}
	return r, nil
}

// TryGet implements runtime.PartialStore.
func (s *FileStore) TryGet(name string) (runtime.Renderable, bool) {
	path := s.path(name)
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}

	if !s.development {
		s.mu.RLock()
		entry, ok := s.cache[name]
		s.mu.RUnlock()
		if ok && !info.ModTime().After(entry.modTime) {
			return entry.tmpl, true
		}
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	tmpl, err := parser.ParseString(string(src), s.lang)
	if err != nil {
		return nil, false
	}

	if !s.development {
		s.mu.Lock()
		s.cache[name] = fileCacheEntry{tmpl: tmpl.Root, modTime: info.ModTime()}
		s.mu.Unlock()
	}
	return tmpl.Root, true
}

// Contains implements runtime.PartialStore.
func (s *FileStore) Contains(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

// Names implements runtime.PartialStore by walking the store's
// directory tree for files carrying its configured extension.
func (s *FileStore) Names() []string {
	var names []string
	filepath.Walk(s.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || filepath.Ext(path) != s.extension {
			return nil
		}
		rel, err := filepath.Rel(s.dir, path)
		if err != nil {
			return nil
		}
		rel = rel[:len(rel)-len(s.extension)]
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	return names
}

var _ runtime.PartialStore = (*FileStore)(nil)

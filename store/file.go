package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// FileStore persists keys into a single flat JSON or YAML document on disk.
// The format is chosen from the file extension. Writes accumulate in memory
// and reach the file on Sync or Close, so a batch of Set calls costs one
// rewrite of the document.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	format string
	data   map[string][]byte
	dirty  bool
}

// NewFileStore opens the settings document at path, creating an empty store
// when the file does not exist yet. Supported extensions are .json, .yaml
// and .yml.
func NewFileStore(path string) (*FileStore, error) {
	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = formatJSON
	case ".yaml", ".yml":
		format = formatYAML
	default:
		return nil, fmt.Errorf("unsupported settings file extension %q", filepath.Ext(path))
	}

	s := &FileStore{
		path:   path,
		format: format,
		data:   make(map[string][]byte),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		logrus.WithField("path", s.path).Debug("settings file does not exist yet, starting empty")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	switch s.format {
	case formatJSON:
		if !gjson.ValidBytes(raw) {
			return fmt.Errorf("settings file %q is not valid JSON", s.path)
		}
		gjson.ParseBytes(raw).ForEach(func(key, value gjson.Result) bool {
			s.data[key.String()] = []byte(value.String())
			return true
		})
	case formatYAML:
		doc := make(map[string]any)
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("failed to parse settings file: %w", err)
		}
		for key, value := range doc {
			if str, ok := value.(string); ok {
				s.data[key] = []byte(str)
			} else {
				s.data[key] = []byte(fmt.Sprintf("%v", value))
			}
		}
	}
	return nil
}

// Get retrieves a value by its key.
func (s *FileStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return value, nil
}

// Set stores a key-value pair. The change reaches the file on Sync.
func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	s.dirty = true
	return nil
}

// Delete removes a key.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; ok {
		delete(s.data, key)
		s.dirty = true
	}
	return nil
}

// Exists checks if a key exists.
func (s *FileStore) Exists(key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.data[key]
	return ok, nil
}

// Clear removes all entries.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.data) > 0 {
		s.data = make(map[string][]byte)
		s.dirty = true
	}
	return nil
}

// Sync rewrites the document when in-memory entries have changed since the
// last write. Keys are emitted in sorted order so repeated saves of the same
// state produce identical files.
func (s *FileStore) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	out, err := s.marshal()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, out, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	s.dirty = false
	return nil
}

func (s *FileStore) marshal() ([]byte, error) {
	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	switch s.format {
	case formatJSON:
		doc := []byte("{}")
		for _, key := range keys {
			var err error
			doc, err = sjson.SetBytes(doc, escapeJSONPath(key), string(s.data[key]))
			if err != nil {
				return nil, fmt.Errorf("failed to encode settings file: %w", err)
			}
		}
		return doc, nil
	case formatYAML:
		doc := make(map[string]string, len(s.data))
		for _, key := range keys {
			doc[key] = string(s.data[key])
		}
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode settings file: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown settings file format %q", s.format)
}

// Close flushes pending writes and releases the store.
func (s *FileStore) Close() error {
	return s.Sync()
}

// escapeJSONPath protects path syntax characters so a settings key maps to a
// single top-level member of the JSON document.
func escapeJSONPath(key string) string {
	return jsonPathEscaper.Replace(key)
}

var jsonPathEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`?`, `\?`,
	`:`, `\:`,
)

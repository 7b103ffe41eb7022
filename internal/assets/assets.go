// Package assets finds model, texture and shader files under a list of search
// roots and caches their contents.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/logger"
)

// ErrNotFound is returned when no root holds the requested file.
var ErrNotFound = errors.New("asset not found")

// Manager resolves asset names against directory roots.
// Roots are searched in reverse order (last added = highest priority).
type Manager struct {
	roots []string
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a manager with the given roots, in priority order
// lowest first.
func NewManager(roots ...string) (*Manager, error) {
	m := &Manager{cache: NewCache()}
	for _, r := range roots {
		if err := m.AddRoot(r); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// AddRoot adds a search directory.
func (m *Manager) AddRoot(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("asset root %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset root %s: not a directory", dir)
	}

	m.mu.Lock()
	m.roots = append(m.roots, dir)
	m.mu.Unlock()
	return nil
}

// Roots returns the search roots in the order they were added.
func (m *Manager) Roots() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.roots...)
}

// Resolve returns the path of name. Absolute names are used as they are.
func (m *Manager) Resolve(name string) (string, error) {
	if filepath.IsAbs(name) {
		if fileExists(name) {
			return name, nil
		}
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := len(m.roots) - 1; i >= 0; i-- {
		p := filepath.Join(m.roots[i], filepath.FromSlash(name))
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Load returns the contents of name, reading it at most once.
func (m *Manager) Load(name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	path, err := m.Resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	logger.Debug("asset loaded", zap.String("name", name), zap.String("path", path), zap.Int("bytes", len(data)))

	m.cache.Set(name, data)
	return data, nil
}

// Stats returns cache hit and miss counts.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops the roots and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	m.roots = nil
	m.mu.Unlock()
	m.cache.Clear()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear empties the cache and resets its statistics.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

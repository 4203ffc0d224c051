// Package extension is the dispatch table for add-on calculation modules
// (compatibility, yoga, bhava, navamsa, and whatever comes next). New
// capabilities are added by registering an entry under a string id, not by
// subclassing anything.
package extension

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/Gauthampro7/vedic-astrology-app/internal/chart"
)

// Module is one add-on calculation over an assembled chart.
type Module interface {
	Name() string
	Version() string
	Description() string
	Calculate(c *chart.Chart) (map[string]any, error)
}

// Registry maps module ids to implementations. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
	log     *zap.Logger
}

// NewRegistry builds a registry pre-populated with the built-in modules.
func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{modules: make(map[string]Module), log: log}
	r.Register("compatibility", &compatibilityModule{})
	r.Register("yoga", &yogaModule{})
	r.Register("bhava", &bhavaModule{})
	r.Register("navamsa", &navamsaModule{})
	return r
}

// Register adds or replaces a module under id.
func (r *Registry) Register(id string, m Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules[id] = m
	r.log.Debug("registered module", zap.String("id", id), zap.String("name", m.Name()))
}

// Unregister removes a module, reporting whether it existed.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.modules[id]; !ok {
		return false
	}
	delete(r.modules, id)
	return true
}

// Get returns the module registered under id.
func (r *Registry) Get(id string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[id]
	return m, ok
}

// IDs returns the registered module ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.modules))
	for id := range r.modules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Execute runs the module registered under id against a chart.
func (r *Registry) Execute(id string, c *chart.Chart) (map[string]any, error) {
	m, ok := r.Get(id)
	if !ok {
		return nil, fmt.Errorf("extension: module %q not found", id)
	}
	result, err := m.Calculate(c)
	if err != nil {
		r.log.Error("module execution failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("extension: %s: %w", id, err)
	}
	r.log.Info("module executed", zap.String("id", id))
	return result, nil
}

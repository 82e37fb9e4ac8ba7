package model

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"
)

var (
	// ErrDuplicateModel is returned when a name is registered twice
	ErrDuplicateModel = errors.New("block model already registered")
	// ErrEmptyName is returned when registering a model without a name
	ErrEmptyName = errors.New("block model name is empty")
)

// Registry maps block type names to models. It is filled once at startup and
// read concurrently by render workers afterwards.
type Registry struct {
	mu     sync.RWMutex
	models map[string]BlockModel
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{models: make(map[string]BlockModel)}
}

// Register adds a model under name
func (r *Registry) Register(name string, m BlockModel) error {
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.models[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateModel, name)
	}
	r.models[name] = m
	return nil
}

// Lookup returns the model registered under name
func (r *Registry) Lookup(name string) (BlockModel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.models[name]
	return m, ok
}

// Names returns all registered names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := lo.Keys(r.models)
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Len returns the number of registered models
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.models)
}

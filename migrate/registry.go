package migrate

import (
	"fmt"
	"sort"
	"sync"

	"github.com/forgo/batteries/schema"
)

// Registry collects table models keyed by table name.
type Registry struct {
	mu     sync.Mutex
	models map[string]schema.Model
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{models: make(map[string]schema.Model)}
}

// Register adds a model to the registry. It panics on a nil model or a
// duplicate table name: registration runs at init time, where an error
// return has no consumer.
func (r *Registry) Register(m schema.Model) {
	if m == nil {
		panic("migrate: Register called with nil model")
	}

	name := m.TableName()
	if name == "" {
		panic("migrate: model has empty table name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.models[name]; dup {
		panic(fmt.Sprintf("migrate: table %q registered twice", name))
	}
	r.models[name] = m
}

// Models returns the registered models sorted by table name, so plans
// and migrations are deterministic regardless of import order.
func (r *Registry) Models() []schema.Model {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]schema.Model, 0, len(names))
	for _, name := range names {
		out = append(out, r.models[name])
	}
	return out
}

// defaultRegistry backs the package-level functions.
var defaultRegistry = NewRegistry()

// Register adds a model to the default registry.
func Register(m schema.Model) {
	defaultRegistry.Register(m)
}

// Models returns the default registry's models sorted by table name.
func Models() []schema.Model {
	return defaultRegistry.Models()
}

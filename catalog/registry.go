// Package catalog implements the process-wide storage registry the table-
// access operator consults (spec.md §6, "a storage registry providing
// get_table(name) -> Table"). It follows ByteDB's registry shape
// (core/table_registry.go, catalog/memory_store.go) generalized from
// mapping table names to parquet file paths to mapping them directly to
// in-memory storage.Table instances.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"chunkstore/storage"
)

// Registry is an in-memory, name-keyed table registry safe for concurrent
// use. A process is expected to initialize one Registry at startup and
// tear it down at shutdown (spec.md §6).
type Registry struct {
	mu      sync.RWMutex
	tables  map[string]*entry
}

type entry struct {
	table *storage.Table
	id    uuid.UUID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]*entry)}
}

// Register adds table under name, replacing any existing registration.
// Each registration is tagged with a fresh UUID identity token surfaced by
// Describe, used for log/trace correlation the way a multi-tenant catalog
// would (following dot5enko-simple-column-db and ajitpratap0-nebula's use
// of google/uuid for entity identity, applied to ByteDB's name-keyed
// registry shape).
func (r *Registry) Register(name string, table *storage.Table) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[name] = &entry{table: table, id: uuid.New()}
}

// GetTable returns the table registered under name, or a NotFound error.
func (r *Registry) GetTable(name string) (*storage.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.tables[name]
	if !ok {
		return nil, &storage.Error{
			Op:   "catalog.Registry.GetTable",
			Kind: storage.KindNotFound,
			Err:  fmt.Errorf("table %q not registered", name),
		}
	}
	return e.table, nil
}

// Describe returns the registry identity token for name, for correlating
// logs and metrics with a specific registration. Returns the zero UUID and
// false if name isn't registered.
func (r *Registry) Describe(name string) (uuid.UUID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.tables[name]
	if !ok {
		return uuid.UUID{}, false
	}
	return e.id, true
}

// Unregister removes name from the registry, if present.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tables, name)
}

// ListTables returns all registered table names in sorted order.
func (r *Registry) ListTables() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

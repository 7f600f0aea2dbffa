// Package registry is the master gene-ID registry shared by every timepoint
// graph of a run.
//
// What:
//
//   - Maps gene symbols (case-insensitive, surrounding whitespace ignored) to
//     0-indexed global IDs.
//   - IDs are allocated monotonically on first sight and are never reused or
//     remapped. The registry is append-only.
//   - Safe for concurrent Lookup/Resolve from many goroutines: reads take a
//     read lock, inserts use a compare-and-insert under the write lock.
//
// Lifecycle:
//
//	New / Preload   once, before any timepoint graph is built
//	Resolve         during ingestion (append-only inserts)
//	Freeze          optional: reject further inserts
//	Lookup/Validate at any time
//
// Errors:
//
//   - ErrEmptySymbol  symbol is blank after trimming.
//   - ErrUnknownGene  ID or symbol is not registered (wrapped by UnknownGeneError).
//   - ErrFrozen       insert attempted after Freeze.
//   - ErrConflict     Preload would remap an existing symbol or reuse an ID.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrEmptySymbol indicates a blank gene symbol.
	ErrEmptySymbol = errors.New("registry: empty gene symbol")

	// ErrUnknownGene indicates a lookup for an unregistered gene.
	ErrUnknownGene = errors.New("registry: unknown gene")

	// ErrFrozen indicates an insert into a frozen registry.
	ErrFrozen = errors.New("registry: frozen")

	// ErrConflict indicates a preload entry contradicting an existing mapping.
	ErrConflict = errors.New("registry: conflicting mapping")
)

// UnknownGeneError reports a registry miss. It is never resolved by creating
// the gene on the fly, so typos surface instead of growing the registry.
type UnknownGeneError struct {
	ID     int    // set for ID lookups, -1 otherwise
	Symbol string // set for symbol lookups
}

func (e *UnknownGeneError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("registry: unknown gene symbol %q", e.Symbol)
	}

	return fmt.Sprintf("registry: unknown gene id %d", e.ID)
}

// Unwrap exposes ErrUnknownGene for errors.Is.
func (e *UnknownGeneError) Unwrap() error { return ErrUnknownGene }

// Gene is an immutable registry entry.
type Gene struct {
	ID          int
	Symbol      string // first-seen spelling
	Description string
}

// Registry is the process-scoped symbol → ID map.
type Registry struct {
	mu     sync.RWMutex
	byKey  map[string]int // normalized symbol → id
	genes  []Gene         // id → entry (dense, ids are 0..len-1)
	frozen bool
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{byKey: make(map[string]int)}
}

// Normalize returns the lookup key for a symbol.
func Normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Lookup returns the ID of a registered symbol.
// Complexity: O(len(symbol)).
func (r *Registry) Lookup(symbol string) (int, bool) {
	key := Normalize(symbol)
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byKey[key]

	return id, ok
}

// Resolve returns the ID for symbol, registering it on first sight.
// created reports whether this call allocated the ID.
//
// The read path is lock-shared; on a miss the write lock is taken and the map
// re-checked, so two goroutines racing on the same new symbol get the same ID.
func (r *Registry) Resolve(symbol string) (id int, created bool, err error) {
	return r.ResolveWithDescription(symbol, "")
}

// ResolveWithDescription behaves like Resolve and stores description when the
// symbol is created. Existing entries are never modified.
func (r *Registry) ResolveWithDescription(symbol, description string) (int, bool, error) {
	key := Normalize(symbol)
	if key == "" {
		return 0, false, ErrEmptySymbol
	}

	r.mu.RLock()
	id, ok := r.byKey[key]
	r.mu.RUnlock()
	if ok {
		return id, false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok = r.byKey[key]; ok {
		return id, false, nil
	}
	if r.frozen {
		return 0, false, fmt.Errorf("Resolve(%q): %w", symbol, ErrFrozen)
	}
	id = len(r.genes)
	r.genes = append(r.genes, Gene{ID: id, Symbol: strings.TrimSpace(symbol), Description: description})
	r.byKey[key] = id

	return id, true, nil
}

// Gene returns the entry for id or an *UnknownGeneError.
func (r *Registry) Gene(id int) (Gene, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id < 0 || id >= len(r.genes) {
		return Gene{}, &UnknownGeneError{ID: id}
	}

	return r.genes[id], nil
}

// Validate checks that id is registered.
func (r *Registry) Validate(id int) error {
	_, err := r.Gene(id)

	return err
}

// MustLookup returns the ID for symbol or an *UnknownGeneError.
func (r *Registry) MustLookup(symbol string) (int, error) {
	id, ok := r.Lookup(symbol)
	if !ok {
		return 0, &UnknownGeneError{ID: -1, Symbol: symbol}
	}

	return id, nil
}

// Len returns the number of registered genes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.genes)
}

// Freeze rejects every later insert with ErrFrozen. Lookups keep working.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Preload seeds the registry from a persisted symbol → ID table.
//
// Entries must be consistent with what is already registered and the
// resulting ID space must be dense (0..n-1) so that later inserts keep
// allocating monotonically. Preload is all-or-nothing.
func (r *Registry) Preload(entries map[string]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Sort by ID for deterministic validation and insertion.
	type kv struct {
		symbol string
		id     int
	}
	list := make([]kv, 0, len(entries))
	for s, id := range entries {
		list = append(list, kv{symbol: s, id: id})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].id < list[j].id })

	next := make([]Gene, len(r.genes))
	copy(next, r.genes)
	keys := make(map[string]int, len(r.byKey)+len(list))
	for k, v := range r.byKey {
		keys[k] = v
	}

	for _, e := range list {
		key := Normalize(e.symbol)
		if key == "" {
			return ErrEmptySymbol
		}
		if e.id < 0 {
			return fmt.Errorf("Preload(%q→%d): %w", e.symbol, e.id, ErrConflict)
		}
		if have, ok := keys[key]; ok {
			if have != e.id {
				return fmt.Errorf("Preload(%q→%d): already %d: %w", e.symbol, e.id, have, ErrConflict)
			}
			continue
		}
		switch {
		case e.id < len(next):
			return fmt.Errorf("Preload(%q→%d): id taken by %q: %w", e.symbol, e.id, next[e.id].Symbol, ErrConflict)
		case e.id > len(next):
			return fmt.Errorf("Preload(%q→%d): gap after %d: %w", e.symbol, e.id, len(next)-1, ErrConflict)
		}
		next = append(next, Gene{ID: e.id, Symbol: strings.TrimSpace(e.symbol)})
		keys[key] = e.id
	}

	r.genes = next
	r.byKey = keys

	return nil
}

// Snapshot returns a copy of all entries ordered by ID.
func (r *Registry) Snapshot() []Gene {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Gene, len(r.genes))
	copy(out, r.genes)

	return out
}

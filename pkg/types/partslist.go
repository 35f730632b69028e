package types

import (
	"slices"
	"sort"
)

// PartsList is a keyed multiset of Parts, at most one Part per key.
// A PartsList is not safe for concurrent use; each list belongs to one
// caller or operation at a time.
type PartsList struct {
	Path   string           // Source the list was imported from; empty when synthesized.
	Header []string         // Header row of the source; nil when synthesized.
	Parts  map[string]*Part // Parts indexed by Part.Key.
}

// NewPartsList returns an empty list with no provenance.
func NewPartsList() *PartsList {
	return &PartsList{Parts: make(map[string]*Part)}
}

// Len returns the number of unique keys.
func (l *PartsList) Len() int {
	return len(l.Parts)
}

// TotalQuantity returns the sum of all part quantities.
func (l *PartsList) TotalQuantity() int {
	total := 0
	for _, p := range l.Parts {
		total += p.Quantity
	}
	return total
}

// Get returns the part stored under key.
func (l *PartsList) Get(key string) (*Part, bool) {
	p, ok := l.Parts[key]
	return p, ok
}

// Put stores p under its key, replacing whatever was there.
func (l *PartsList) Put(p *Part) {
	if l.Parts == nil {
		l.Parts = make(map[string]*Part)
	}
	l.Parts[p.Key()] = p
}

// Delete removes key from the list. Deleting a missing key is a no-op.
func (l *PartsList) Delete(key string) {
	delete(l.Parts, key)
}

// Insert adds an imported part. A part whose key is already present is
// summed into the existing entry rather than overwriting it, so a source
// that lists the same part twice keeps its full quantity.
// Returns true when p collided with an existing key.
func (l *PartsList) Insert(p *Part) bool {
	key := p.Key()
	if existing, ok := l.Parts[key]; ok {
		l.Parts[key] = existing.Add(p)
		return true
	}
	l.Put(p)
	return false
}

// Keys returns all keys in ascending order. Exports and reports iterate in
// this order so output is deterministic.
func (l *PartsList) Keys() []string {
	keys := make([]string, 0, len(l.Parts))
	for k := range l.Parts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sorted returns the parts ordered by key.
func (l *PartsList) Sorted() []*Part {
	keys := l.Keys()
	parts := make([]*Part, len(keys))
	for i, k := range keys {
		parts[i] = l.Parts[k]
	}
	return parts
}

// SetAnyColor generalizes every part whose color matches one of
// colorNames (case-insensitive) and re-keys it under the any-color key.
// When two generalized parts share a key the one processed last wins;
// processing follows key order.
func (l *PartsList) SetAnyColor(colorNames ...string) {
	if len(colorNames) == 0 {
		return
	}
	for _, key := range l.Keys() {
		p := l.Parts[key]
		if p.IsAnyColor() || !matchesAny(p, colorNames) {
			continue
		}
		delete(l.Parts, key)
		p.EnableAnyColor()
		l.Put(p)
	}
}

func matchesAny(p *Part, colorNames []string) bool {
	for _, name := range colorNames {
		if p.IsColorMatch(name) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy with the provenance path cleared.
func (l *PartsList) Clone() *PartsList {
	cp := &PartsList{
		Header: slices.Clone(l.Header),
		Parts:  make(map[string]*Part, len(l.Parts)),
	}
	for k, p := range l.Parts {
		cp.Parts[k] = p.Clone()
	}
	return cp
}

// Equal reports whether both lists share the same path, header arity, and
// parts. Key order is irrelevant.
func (l *PartsList) Equal(other *PartsList) bool {
	if l == nil || other == nil {
		return l == other
	}
	if l.Path != other.Path {
		return false
	}
	if len(l.Header) != len(other.Header) {
		return false
	}
	return l.EqualParts(other)
}

// EqualParts compares only the key sets and the parts under each key,
// ignoring provenance and header.
func (l *PartsList) EqualParts(other *PartsList) bool {
	if len(l.Parts) != len(other.Parts) {
		return false
	}
	for k, p := range l.Parts {
		o, ok := other.Parts[k]
		if !ok || !p.Equal(o) {
			return false
		}
	}
	return true
}

// SummaryEntry is the JSON shape of one part in a summary export.
type SummaryEntry struct {
	Part     string `json:"part"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

// Summary returns one entry per part, ordered by key.
func (l *PartsList) Summary() []SummaryEntry {
	parts := l.Sorted()
	entries := make([]SummaryEntry, len(parts))
	for i, p := range parts {
		entries[i] = SummaryEntry{Part: p.CatalogNo, Color: p.ColorName, Quantity: p.Quantity}
	}
	return entries
}

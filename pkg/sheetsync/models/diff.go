package models

// Status classifies a reconciled key.
type Status string

const (
	StatusUpdateA    Status = "update-attrA"
	StatusUpdateB    Status = "update-attrB"
	StatusUpdateBoth Status = "update-both"
	StatusNew        Status = "new"
	StatusRemoved    Status = "unchanged-or-removed"
)

// AttributeDiff holds both sides of one attribute.
type AttributeDiff struct {
	Left        string `json:"left"`
	Right       string `json:"right"`
	NeedsUpdate bool   `json:"needs_update"`
}

// DiffEntry is the reconciliation output for one key.
type DiffEntry struct {
	Key    string        `json:"key"`
	AttrA  AttributeDiff `json:"attribute_a"`
	AttrB  AttributeDiff `json:"attribute_b"`
	Status Status        `json:"status"`
}

// ComparisonResult aggregates the reconciliation of two datasets.
type ComparisonResult struct {
	// Matching counts keys present on both sides with equal attributes.
	Matching int `json:"matching"`
	// NonMatching is DistinctKeys minus Matching.
	NonMatching int `json:"non_matching"`
	// Total is the raw sum of both datasets' record counts.
	Total int `json:"total"`
	// DistinctKeys counts keys present on either side.
	DistinctKeys int `json:"distinct_keys"`
	// Counts holds the number of entries per status.
	Counts map[Status]int `json:"counts"`
	// Entries lists left-order entries, then right-only entries.
	Entries []DiffEntry `json:"entries"`
}

// Add appends an entry and counts its status.
func (r *ComparisonResult) Add(e DiffEntry) {
	r.Entries = append(r.Entries, e)
	if r.Counts == nil {
		r.Counts = make(map[Status]int)
	}
	r.Counts[e.Status]++
}

// Updates returns entries that can produce an UPDATE statement.
func (r *ComparisonResult) Updates() []DiffEntry {
	var out []DiffEntry
	for _, e := range r.Entries {
		if e.Status != StatusRemoved {
			out = append(out, e)
		}
	}
	return out
}

// KeyRef is a normalized key with the group it came from.
type KeyRef struct {
	// Key is the normalized identifier.
	Key string `json:"key"`
	// Source names the circuit or file the key belongs to.
	Source string `json:"source"`
}

// KeyRefs converts entries with the given statuses to key references.
// With no statuses every entry is included.
func (r *ComparisonResult) KeyRefs(source string, statuses ...Status) []KeyRef {
	want := make(map[Status]bool, len(statuses))
	for _, s := range statuses {
		want[s] = true
	}
	var out []KeyRef
	for _, e := range r.Entries {
		if len(want) > 0 && !want[e.Status] {
			continue
		}
		out = append(out, KeyRef{Key: e.Key, Source: source})
	}
	return out
}

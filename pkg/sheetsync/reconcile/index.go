package reconcile

import (
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/parser"
)

// index is an insertion-ordered map of records by normalized key.
// A repeated key replaces the stored record but keeps its first position.
type index struct {
	keys    []string
	records map[string]models.Record
}

func newIndex(ds *models.Dataset) *index {
	ix := &index{records: make(map[string]models.Record)}
	if ds == nil {
		return ix
	}
	for _, rec := range ds.Records {
		key := parser.NormalizeKey(rec.ID)
		if key == "" {
			continue
		}
		if _, ok := ix.records[key]; !ok {
			ix.keys = append(ix.keys, key)
		}
		ix.records[key] = rec
	}
	return ix
}

// Get returns the record stored for key.
func (ix *index) Get(key string) (models.Record, bool) {
	rec, ok := ix.records[key]
	return rec, ok
}

// Keys returns keys in first-seen order.
func (ix *index) Keys() []string {
	return ix.keys
}

// Len returns the number of distinct keys.
func (ix *index) Len() int {
	return len(ix.keys)
}

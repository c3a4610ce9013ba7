// Package reconcile matches two datasets by key and classifies differences.
package reconcile

import (
	"github.com/sirupsen/logrus"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
)

// Compare reconciles left (the incoming data) against right (the current
// data). Keys only in left are new, keys only in right are reported as
// unchanged-or-removed, and keys on both sides are compared attribute by
// attribute with exact string equality. Nil datasets count as empty.
func Compare(left, right *models.Dataset) *models.ComparisonResult {
	lix := newIndex(left)
	rix := newIndex(right)

	result := &models.ComparisonResult{
		Total:   left.RecordCount() + right.RecordCount(),
		Counts:  make(map[models.Status]int),
		Entries: []models.DiffEntry{},
	}

	for _, key := range lix.Keys() {
		l, _ := lix.Get(key)
		r, inRight := rix.Get(key)
		if !inRight {
			result.Add(newEntry(key, l, models.Record{}, models.StatusNew))
			continue
		}

		entry := newEntry(key, l, r, "")
		switch {
		case entry.AttrA.NeedsUpdate && entry.AttrB.NeedsUpdate:
			entry.Status = models.StatusUpdateBoth
		case entry.AttrA.NeedsUpdate:
			entry.Status = models.StatusUpdateA
		case entry.AttrB.NeedsUpdate:
			entry.Status = models.StatusUpdateB
		default:
			result.Matching++
			continue
		}
		result.Add(entry)
	}

	distinct := lix.Len()
	for _, key := range rix.Keys() {
		if _, inLeft := lix.Get(key); inLeft {
			continue
		}
		distinct++
		r, _ := rix.Get(key)
		result.Add(newEntry(key, models.Record{}, r, models.StatusRemoved))
	}

	result.DistinctKeys = distinct
	result.NonMatching = distinct - result.Matching

	logrus.WithFields(logrus.Fields{
		"matching":     result.Matching,
		"non_matching": result.NonMatching,
		"distinct":     result.DistinctKeys,
		"total":        result.Total,
	}).Debug("datasets reconciled")
	return result
}

func newEntry(key string, l, r models.Record, status models.Status) models.DiffEntry {
	return models.DiffEntry{
		Key:    key,
		AttrA:  diffAttr(l.AttrA, r.AttrA),
		AttrB:  diffAttr(l.AttrB, r.AttrB),
		Status: status,
	}
}

func diffAttr(left, right string) models.AttributeDiff {
	return models.AttributeDiff{
		Left:        left,
		Right:       right,
		NeedsUpdate: left != right,
	}
}

// Package dedup answers whether a phone number already belongs to a
// collected entry. Duplicates are gated here, before the store is touched;
// the store itself never checks.
package dedup

import (
	"github.com/armanazij/mygp-survey/internal/models"
	"github.com/armanazij/mygp-survey/internal/phone"
)

type Index struct {
	norm *phone.Normalizer
}

func NewIndex(norm *phone.Normalizer) *Index {
	return &Index{norm: norm}
}

// IsDuplicate reports whether any entry's phone number normalizes to the
// same value as candidateRaw. Entries without a phone number are skipped and
// never match. A linear scan is fine at survey scale.
func (i *Index) IsDuplicate(candidateRaw string, entries []models.Entry) bool {
	candidate := i.norm.Normalize(candidateRaw)
	for _, e := range entries {
		if e.PhoneNumber == "" {
			continue
		}
		if i.norm.Normalize(e.PhoneNumber) == candidate {
			return true
		}
	}
	return false
}

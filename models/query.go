package models

import "strings"

// RecordFilter selects a subset of the collection. Every dimension is
// optional; active dimensions are ANDed. Date bounds are inclusive and
// compared lexicographically on the zero-padded ISO strings.
type RecordFilter struct {
	// case-insensitive substring over serial number, customer name and
	// project (a record matches if any of the three contains it)
	SearchText string
	// exact match against the persisted status; "" or "All" = no constraint.
	// Overdue is never persisted, so filtering on it matches nothing.
	Status string

	CommissioningDueFrom string
	CommissioningDueTo   string
	PBGDueFrom           string
	PBGDueTo             string
}

func (f *RecordFilter) active() bool {
	return f.SearchText != "" ||
		(f.Status != "" && f.Status != "All") ||
		f.CommissioningDueFrom != "" || f.CommissioningDueTo != "" ||
		f.PBGDueFrom != "" || f.PBGDueTo != ""
}

// Apply returns the matching subset in the input order.
func (f *RecordFilter) Apply(records []*TransformerRecord) []*TransformerRecord {
	if !f.active() {
		return records
	}
	out := make([]*TransformerRecord, 0, len(records))
	for _, rec := range records {
		if f.matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (f *RecordFilter) matches(rec *TransformerRecord) bool {
	if f.SearchText != "" {
		needle := strings.ToLower(f.SearchText)
		if !strings.Contains(strings.ToLower(rec.SerialNumber), needle) &&
			!strings.Contains(strings.ToLower(rec.CustomerName), needle) &&
			!strings.Contains(strings.ToLower(rec.Project), needle) {
			return false
		}
	}

	if f.Status != "" && f.Status != "All" && string(rec.Status) != f.Status {
		return false
	}

	if !inDateRange(rec.CommissioningDueDate, f.CommissioningDueFrom, f.CommissioningDueTo) {
		return false
	}
	if !inDateRange(rec.PBGDueDate, f.PBGDueFrom, f.PBGDueTo) {
		return false
	}

	return true
}

// a record with no date never matches a non-empty range
func inDateRange(date, from, to string) bool {
	if from == "" && to == "" {
		return true
	}
	if date == "" {
		return false
	}
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}

package models

import "time"

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

// AddMonths advances an ISO date by whole months and returns the result in
// the same format. Month overflow follows time.AddDate normalization
// (2024-01-31 + 1 month = 2024-03-02), the one rollover rule used everywhere
// in this package. An unparseable base date yields "".
func AddMonths(base string, months int) string {
	t, err := time.Parse(DateLayout, base)
	if err != nil {
		return ""
	}
	return t.AddDate(0, months, 0).Format(DateLayout)
}

// ComputeWarrantyDispatch derives the dispatch-warranty expiry date.
// A missing month count falls back to DefaultWarrantyMonthsDispatch; an
// unusable dispatch date yields "".
func ComputeWarrantyDispatch(dispatchDate string, months int) string {
	if months <= 0 {
		months = DefaultWarrantyMonthsDispatch
	}
	return AddMonths(dispatchDate, months)
}

// ComputeWarrantyComm derives the commissioning-warranty expiry date. The
// base is the commissioning done date when present, else the due date;
// without either there is no warranty yet and the result is "".
func ComputeWarrantyComm(doneDate *string, dueDate string, months int) string {
	base := dueDate
	if doneDate != nil && *doneDate != "" {
		base = *doneDate
	}
	if base == "" {
		return ""
	}
	if months <= 0 {
		months = DefaultWarrantyMonthsComm
	}
	return AddMonths(base, months)
}

// DeriveStatus returns the persisted status: Commissioned when a
// commissioning done date exists, Dispatched otherwise. Overdue is never
// persisted.
func DeriveStatus(doneDate *string) RecordStatus {
	if doneDate != nil && *doneDate != "" {
		return RecordStatusCommissioned
	}
	return RecordStatusDispatched
}

// IsOverdue is the display/aggregation predicate behind RecordStatusOverdue,
// the third status that is never persisted: the record is not commissioned
// and its commissioning due date is strictly before today (both zero-padded
// ISO strings, compared lexicographically).
func IsOverdue(rec *TransformerRecord, today string) bool {
	if rec.Status == RecordStatusCommissioned {
		return false
	}
	return rec.CommissioningDueDate != "" && rec.CommissioningDueDate < today
}

// Today returns the current date in the wire format.
func Today() string {
	return time.Now().Format(DateLayout)
}

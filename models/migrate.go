package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// RawRecord is the loosely-shaped record as read from a snapshot, which may
// have been written by an earlier schema version (or by the original browser
// app). Optional fields are pointers so that "absent" and "empty" can be
// told apart; numbers use json.Number because old snapshots stored them as
// either numbers or strings. Nothing beyond this boundary touches the raw
// shape.
type RawRecord struct {
	ID                     string          `json:"id"`
	SerialNumber           string          `json:"serialNumber"`
	CustomerName           string          `json:"customerName"`
	Project                string          `json:"project"`
	DispatchDate           string          `json:"dispatchDate"`
	RatingKVA              json.Number     `json:"ratingKVA"`
	VoltageRatio           string          `json:"voltageRatio"`
	CommissioningDueDate   string          `json:"commissioningDueDate"`
	SourceWarehouse        string          `json:"sourceWarehouse"`
	ShippingAddress        string          `json:"shippingAddress"`
	WarrantyMonthsComm     json.Number     `json:"warrantyMonthsComm"`
	WarrantyMonthsDispatch json.Number     `json:"warrantyMonthsDispatch"`
	WarrantyDateDispatch   string          `json:"warrantyDateDispatch"`
	WarrantyDateComm       string          `json:"warrantyDateComm"`
	PBGDueDate             string          `json:"pbgDueDate"`
	PBGAmount              decimal.Decimal `json:"pbgAmount"`
	CommissioningDoneDate  *string         `json:"commissioningDoneDate"`
	Status                 string          `json:"status"`
	SalesPerson            *string         `json:"salesPerson"`
	Territory              *string         `json:"territory"`
	State                  *string         `json:"state"`
	Narration              *string         `json:"narration"`
}

// Migrate backfills the fields newer schema versions added and normalizes
// the persisted status, producing a strongly-typed record. Running it on an
// already-migrated record changes nothing.
//
//   - salesPerson defaults to "N/A"; territory/state/narration to "".
//   - a missing warrantyDateDispatch falls back to the stored dispatch date
//     (degraded fallback, deliberately not a recompute: the stored value may
//     predate the month-count fields).
//   - a missing warrantyDateComm is recomputed from the commissioning dates.
//   - legacy snapshots persisted "Overdue"; status is re-derived so only the
//     two persistable states survive a load.
func (raw *RawRecord) Migrate() *TransformerRecord {
	done := raw.CommissioningDoneDate
	if done != nil && *done == "" {
		done = nil
	}

	// empty counts as missing here: earlier versions wrote "" for records
	// created before the field existed
	salesPerson := stringOr(raw.SalesPerson, "")
	if salesPerson == "" {
		salesPerson = "N/A"
	}

	rec := &TransformerRecord{
		ID:                     raw.ID,
		SerialNumber:           raw.SerialNumber,
		CustomerName:           raw.CustomerName,
		Project:                raw.Project,
		DispatchDate:           raw.DispatchDate,
		RatingKVA:              numberToFloat(raw.RatingKVA),
		VoltageRatio:           raw.VoltageRatio,
		CommissioningDueDate:   raw.CommissioningDueDate,
		SourceWarehouse:        raw.SourceWarehouse,
		ShippingAddress:        raw.ShippingAddress,
		WarrantyMonthsComm:     numberToInt(raw.WarrantyMonthsComm),
		WarrantyMonthsDispatch: numberToInt(raw.WarrantyMonthsDispatch),
		WarrantyDateDispatch:   raw.WarrantyDateDispatch,
		WarrantyDateComm:       raw.WarrantyDateComm,
		PBGDueDate:             raw.PBGDueDate,
		PBGAmount:              raw.PBGAmount,
		CommissioningDoneDate:  done,
		SalesPerson:            salesPerson,
		Territory:              stringOr(raw.Territory, ""),
		State:                  stringOr(raw.State, ""),
		Narration:              stringOr(raw.Narration, ""),
	}

	if rec.WarrantyDateDispatch == "" {
		rec.WarrantyDateDispatch = rec.DispatchDate
	}
	if rec.WarrantyDateComm == "" {
		rec.WarrantyDateComm = ComputeWarrantyComm(rec.CommissioningDoneDate, rec.CommissioningDueDate, rec.WarrantyMonthsComm)
	}
	rec.Status = DeriveStatus(rec.CommissioningDoneDate)

	return rec
}

// MigrateRecords migrates a whole snapshot, preserving order.
func MigrateRecords(raw []RawRecord) []*TransformerRecord {
	out := make([]*TransformerRecord, 0, len(raw))
	for i := range raw {
		out = append(out, raw[i].Migrate())
	}
	return out
}

func numberToFloat(n json.Number) float64 {
	f, err := n.Float64()
	if err != nil {
		return 0
	}
	return f
}

func numberToInt(n json.Number) int {
	f, err := n.Float64()
	if err != nil {
		return 0
	}
	return int(f)
}

func stringOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

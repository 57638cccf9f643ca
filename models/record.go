package models

import (
	"github.com/shopspring/decimal"
)

// TransformerRecord is a transformer dispatch record, the central MIS entity.
//
// JSON field names match the browser app's snapshot format so snapshots
// written by earlier versions load unchanged. All calendar dates are
// zero-padded ISO strings (YYYY-MM-DD); date ranges are compared
// lexicographically, which is only valid for this fixed-width format.
//
// WarrantyDateDispatch, WarrantyDateComm and Status are derived fields.
// They are recomputed on every create/update and must never be edited
// directly.
type TransformerRecord struct {
	ID                     string          `json:"id"`
	SerialNumber           string          `json:"serialNumber"`
	CustomerName           string          `json:"customerName"`
	Project                string          `json:"project"`
	DispatchDate           string          `json:"dispatchDate"`
	RatingKVA              float64         `json:"ratingKVA"`
	VoltageRatio           string          `json:"voltageRatio"`
	CommissioningDueDate   string          `json:"commissioningDueDate"`
	SourceWarehouse        string          `json:"sourceWarehouse"`
	ShippingAddress        string          `json:"shippingAddress"`
	WarrantyMonthsComm     int             `json:"warrantyMonthsComm"`
	WarrantyMonthsDispatch int             `json:"warrantyMonthsDispatch"`
	WarrantyDateDispatch   string          `json:"warrantyDateDispatch"`
	WarrantyDateComm       string          `json:"warrantyDateComm"`
	PBGDueDate             string          `json:"pbgDueDate"`
	PBGAmount              decimal.Decimal `json:"pbgAmount"`
	CommissioningDoneDate  *string         `json:"commissioningDoneDate"`
	Status                 RecordStatus    `json:"status"`
	SalesPerson            string          `json:"salesPerson"`
	Territory              string          `json:"territory"`
	State                  string          `json:"state"`
	Narration              string          `json:"narration"`
}

// NewTransformerRecord is the draft accepted by create/update. Derived
// fields are absent on purpose: the store computes them.
type NewTransformerRecord struct {
	SerialNumber           string          `json:"serialNumber" validate:"required"`
	CustomerName           string          `json:"customerName" validate:"required"`
	Project                string          `json:"project"`
	DispatchDate           string          `json:"dispatchDate"`
	RatingKVA              float64         `json:"ratingKVA" validate:"gte=0"`
	VoltageRatio           string          `json:"voltageRatio"`
	CommissioningDueDate   string          `json:"commissioningDueDate"`
	SourceWarehouse        string          `json:"sourceWarehouse"`
	ShippingAddress        string          `json:"shippingAddress"`
	WarrantyMonthsComm     int             `json:"warrantyMonthsComm" validate:"gte=0"`
	WarrantyMonthsDispatch int             `json:"warrantyMonthsDispatch" validate:"gte=0"`
	PBGDueDate             string          `json:"pbgDueDate"`
	PBGAmount              decimal.Decimal `json:"pbgAmount"`
	CommissioningDoneDate  string          `json:"commissioningDoneDate"`
	SalesPerson            string          `json:"salesPerson"`
	Territory              string          `json:"territory"`
	State                  string          `json:"state"`
	Narration              string          `json:"narration"`
}

// build a record from the draft: apply field defaults, coerce the optional
// commissioning done date to nil, recompute the derived fields.
func (input *NewTransformerRecord) toRecord(id string) *TransformerRecord {
	rec := &TransformerRecord{
		ID:                     id,
		SerialNumber:           input.SerialNumber,
		CustomerName:           input.CustomerName,
		Project:                defaultString(input.Project, "N/A"),
		DispatchDate:           input.DispatchDate,
		RatingKVA:              input.RatingKVA,
		VoltageRatio:           defaultString(input.VoltageRatio, "N/A"),
		CommissioningDueDate:   input.CommissioningDueDate,
		SourceWarehouse:        defaultString(input.SourceWarehouse, WarehouseRabale),
		ShippingAddress:        input.ShippingAddress,
		WarrantyMonthsComm:     input.WarrantyMonthsComm,
		WarrantyMonthsDispatch: input.WarrantyMonthsDispatch,
		PBGDueDate:             input.PBGDueDate,
		PBGAmount:              input.PBGAmount,
		SalesPerson:            defaultString(input.SalesPerson, "N/A"),
		Territory:              input.Territory,
		State:                  input.State,
		Narration:              input.Narration,
	}

	if input.CommissioningDoneDate != "" {
		done := input.CommissioningDoneDate
		rec.CommissioningDoneDate = &done
	}

	rec.WarrantyDateDispatch = ComputeWarrantyDispatch(rec.DispatchDate, rec.WarrantyMonthsDispatch)
	rec.WarrantyDateComm = ComputeWarrantyComm(rec.CommissioningDoneDate, rec.CommissioningDueDate, rec.WarrantyMonthsComm)
	rec.Status = DeriveStatus(rec.CommissioningDoneDate)

	return rec
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

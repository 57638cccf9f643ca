package reports_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/volttrack/mis_backend/models"
	"github.com/volttrack/mis_backend/models/reports"
)

func TestRecordsWorkbook(t *testing.T) {
	done := "2024-02-10"
	records := []*models.TransformerRecord{
		{
			SerialNumber:          "TR-2024-001",
			CustomerName:          "PowerCorp Ind",
			Project:               "Substation Alpha",
			RatingKVA:             500,
			DispatchDate:          "2024-01-15",
			CommissioningDueDate:  "2024-02-15",
			CommissioningDoneDate: &done,
			Status:                models.RecordStatusCommissioned,
			PBGAmount:             decimal.NewFromInt(15000),
			Narration:             "Priority installation requested.",
		},
		{
			SerialNumber: "TR-2024-002",
			CustomerName: "City Infra Ltd",
			Status:       models.RecordStatusDispatched,
			PBGAmount:    decimal.NewFromInt(25000),
		},
	}

	f, err := reports.RecordsWorkbook(records)
	if err != nil {
		t.Fatalf("RecordsWorkbook: %v", err)
	}

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	// one header row plus one row per record
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	headers := map[string]string{
		"A1": "SerialNumber",
		"I1": "CommissioningDoneDate",
		"J1": "Status",
		"M1": "PBGAmount",
		"R1": "Narration",
	}
	for cell, want := range headers {
		got, err := f.GetCellValue("Sheet1", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Fatalf("header %s = %q, want %q", cell, got, want)
		}
	}

	// data rows follow collection order
	cells := map[string]string{
		"A2": "TR-2024-001",
		"I2": "2024-02-10",
		"J2": "Commissioned",
		"M2": "15000",
		"A3": "TR-2024-002",
		"I3": "", // nil done date exports as empty, not "<nil>"
		"J3": "Dispatched",
	}
	for cell, want := range cells {
		got, err := f.GetCellValue("Sheet1", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Fatalf("cell %s = %q, want %q", cell, got, want)
		}
	}
}

func TestExportFilename(t *testing.T) {
	if got := reports.ExportFilename("2024-06-01"); got != "volttrack-records-2024-06-01.xlsx" {
		t.Fatalf("filename = %q", got)
	}
}

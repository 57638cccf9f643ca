package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/volttrack/mis_backend/models"
)

var exportColumns = []string{
	"SerialNumber",
	"CustomerName",
	"Project",
	"RatingKVA",
	"VoltageRatio",
	"DispatchDate",
	"SourceWarehouse",
	"CommissioningDueDate",
	"CommissioningDoneDate",
	"Status",
	"WarrantyDateDispatch",
	"WarrantyDateComm",
	"PBGAmount",
	"PBGDueDate",
	"SalesPerson",
	"Territory",
	"State",
	"Narration",
}

// RecordsWorkbook builds an xlsx export of the whole collection, one row per
// record, in collection order.
func RecordsWorkbook(records []*models.TransformerRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	_, err := f.NewSheet("Sheet1")
	if err != nil {
		return nil, err
	}

	// Add headers
	for i, col := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue("Sheet1", cell, col)
	}

	// Add data
	for rowIdx, rec := range records {
		done := ""
		if rec.CommissioningDoneDate != nil {
			done = *rec.CommissioningDoneDate
		}
		values := []interface{}{
			rec.SerialNumber,
			rec.CustomerName,
			rec.Project,
			rec.RatingKVA,
			rec.VoltageRatio,
			rec.DispatchDate,
			rec.SourceWarehouse,
			rec.CommissioningDueDate,
			done,
			string(rec.Status),
			rec.WarrantyDateDispatch,
			rec.WarrantyDateComm,
			rec.PBGAmount.String(),
			rec.PBGDueDate,
			rec.SalesPerson,
			rec.Territory,
			rec.State,
			rec.Narration,
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			f.SetCellValue("Sheet1", cell, v)
		}
	}

	return f, nil
}

// ExportFilename returns the attachment name for a records export.
func ExportFilename(today string) string {
	return fmt.Sprintf("volttrack-records-%s.xlsx", today)
}

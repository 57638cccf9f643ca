package models

// RecordStatus is the lifecycle status of a transformer dispatch record.
//
// Only Dispatched and Commissioned are ever persisted; Overdue is computed
// where records are displayed or aggregated (a record that is not yet
// commissioned and whose commissioning due date has passed). See IsOverdue.
type RecordStatus string

const (
	RecordStatusDispatched   RecordStatus = "Dispatched"
	RecordStatusCommissioned RecordStatus = "Commissioned"
	RecordStatusOverdue      RecordStatus = "Overdue"
)

// Known source warehouses. The field is free text; these are the values the
// entry form offers.
const (
	WarehouseRabale      = "Rabale"
	WarehouseTaloja      = "Taloja"
	WarehouseAmbernathM2 = "Ambernath-M2"
)

// Warranty month defaults applied when the draft omits a duration.
const (
	DefaultWarrantyMonthsDispatch = 12
	DefaultWarrantyMonthsComm     = 12
)

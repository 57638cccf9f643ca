package models

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError reports which draft fields are missing or invalid. It
// blocks the mutation; nothing is written to the store.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid record: " + strings.Join(e.Fields, ", ")
}

// run validator tags over the draft and fold failures into a single
// ValidationError keyed by the JSON field names the UI knows.
func validateDraft(input *NewTransformerRecord) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, jsonFieldName(fe.StructField()))
	}
	return &ValidationError{Fields: fields}
}

func jsonFieldName(structField string) string {
	switch structField {
	case "SerialNumber":
		return "serialNumber"
	case "CustomerName":
		return "customerName"
	case "RatingKVA":
		return "ratingKVA"
	case "WarrantyMonthsComm":
		return "warrantyMonthsComm"
	case "WarrantyMonthsDispatch":
		return "warrantyMonthsDispatch"
	default:
		return structField
	}
}

package logging

// Field names shared by every component so log output can be filtered
// consistently.
const (
	FieldRunID      = "run_id"
	FieldComponent  = "component"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldVariant    = "variant"
	FieldStem       = "stem"
	FieldCount      = "count"
	FieldEmployee   = "employee"
	FieldColumn     = "column"
	FieldValue      = "value"
	FieldStatus     = "status"
	FieldDuration   = "duration_ms"
)

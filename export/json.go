package export

import "triagelock/domain/schema"

// JSON renders a record as an indented JSON object with fields in schema
// order
func JSON(record schema.Record) ([]byte, error) {
	return record.MarshalOrdered("  ")
}

package export

import (
	"bytes"
	"encoding/csv"

	"triagelock/domain/schema"
)

// CSV renders a record as a two-column Field,Value table in schema order
func CSV(record schema.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Field", "Value"}); err != nil {
		return nil, err
	}
	for _, fv := range record.OrderedFields() {
		if err := w.Write([]string{FieldLabel(fv.Field.Name), FormatValue(fv.Value)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

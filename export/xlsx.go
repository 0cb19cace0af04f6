package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"triagelock/domain/schema"
	"triagelock/models"
)

// XLSX renders a workbook with the record on one sheet and the session's
// run history on another
func XLSX(record schema.Record, history []models.HistoryEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const recordSheet = "Record"
	f.SetSheetName("Sheet1", recordSheet)

	if err := f.SetSheetRow(recordSheet, "A1", &[]any{"Field", "Value"}); err != nil {
		return nil, err
	}
	for i, fv := range record.OrderedFields() {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{FieldLabel(fv.Field.Name), FormatValue(fv.Value)}
		if err := f.SetSheetRow(recordSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	const historySheet = "Session History"
	if _, err := f.NewSheet(historySheet); err != nil {
		return nil, err
	}
	header := []any{"Run", "At", "Domain", "Latency (s)", "Manual Review (min)", "Top Field", "Top Value"}
	if err := f.SetSheetRow(historySheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, e := range history {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{
			e.Run,
			e.At.Format(time.RFC3339),
			string(e.Domain),
			e.LatencySeconds,
			e.ManualMinutes,
			e.TopField,
			e.TopValue,
		}
		if err := f.SetSheetRow(historySheet, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

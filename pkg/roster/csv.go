package roster

import (
	"encoding/csv"
	"io"
)

// CSVFilename is the suggested download name for an exported schedule.
const CSVFilename = "sequential_roster.csv"

// WriteCSV serializes the schedule as a flat table: a header row of
// "Counter" plus the 12 slot labels, then one row per counter with the
// cells rendered exactly as they appear on the board.
func (s *Schedule) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	header := append([]string{"Counter"}, SlotLabels(s.Pattern)...)
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range s.Rows {
		record := make([]string, 0, len(row.Cells)+1)
		record = append(record, row.Counter)
		for _, cell := range row.Cells {
			record = append(record, RenderCell(cell))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

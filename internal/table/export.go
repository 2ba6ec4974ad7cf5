package table

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes rows as CSV using the data columns of cols. Missing values
// become empty cells.
func WriteCSV(w io.Writer, cols []Column, rows []Record) error {
	var data []Column
	for _, c := range cols {
		if c.ID != "" {
			data = append(data, c)
		}
	}

	cw := csv.NewWriter(w)
	header := make([]string, len(data))
	for i, c := range data {
		header[i] = c.Label
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range rows {
		line := make([]string, len(data))
		for i, c := range data {
			line[i] = Stringify(Resolve(r, c.ID))
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

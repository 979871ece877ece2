// Package export serializes a result table into downloadable delimited text.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"easy-bioclim/internal/bioclim"
	"easy-bioclim/internal/types"
)

// Columns returns the fixed output column set: point identity followed by
// the 19 variable codes in canonical order.
func Columns() []string {
	return append([]string{"name", "longitude", "latitude"}, types.BioCodes()...)
}

// WriteCSV writes the table with a header row and one data row per result
// row. Missing values are rendered as empty fields. Values are written
// exactly as fetched, with no transformation.
func WriteCSV(w io.Writer, table *bioclim.ResultTable, delimiter rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	if err := cw.Write(Columns()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	codes := types.BioCodes()
	for _, row := range table.Rows {
		record := make([]string, 0, 3+len(codes))
		record = append(record,
			row.Name,
			formatFloat(row.Longitude),
			formatFloat(row.Latitude),
		)
		for _, code := range codes {
			value := row.Variables[code]
			if value == nil {
				record = append(record, "")
				continue
			}
			record = append(record, formatFloat(*value))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %q: %w", row.Name, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

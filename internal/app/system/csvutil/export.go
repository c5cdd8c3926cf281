// internal/app/system/csvutil/export.go
package csvutil

import (
	"bytes"
	"encoding/csv"
	"io"
)

// Summary describes a CSV document without keeping its rows.
type Summary struct {
	Header []string
	Rows   int // data rows, header excluded
}

// Summarize reads b as CSV with a header line and counts the data rows.
// Ragged rows are accepted; blank lines are skipped by the reader. The
// bytes are never modified, so callers can still pass them through.
func Summarize(b []byte) (Summary, error) {
	reader := csv.NewReader(bytes.NewReader(b))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var s Summary
	header, err := reader.Read()
	if err == io.EOF {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	s.Header = header

	for {
		_, err := reader.Read()
		if err == io.EOF {
			return s, nil
		}
		if err != nil {
			return s, err
		}
		s.Rows++
	}
}

package files

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ErrNoHeader is returned when a table has no header row (empty file).
var ErrNoHeader = errors.New("no header row")

// Row maps header names to raw cell text for one CSV record.
type Row map[string]string

// Table streams the rows of one tabular source. The header row is consumed
// on open; Next yields the data rows in document order.
type Table struct {
	headers []string
	reader  *csv.Reader
}

// OpenTable wraps r as a table, stripping a UTF-8 BOM if present and reading
// the header row. An empty input yields ErrNoHeader.
func OpenTable(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	if err := skipBOM(br); err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}

	cr := csv.NewReader(br)
	// Input schemas are unknown and rows are often ragged; short rows mean
	// missing cells, long rows carry extras nobody asked for.
	cr.FieldsPerRecord = -1

	headers, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	return &Table{headers: headers, reader: cr}, nil
}

// Headers returns the header row, case preserved, in document order.
func (t *Table) Headers() []string {
	return t.headers
}

// Next returns the next data row keyed by header name, or io.EOF when the
// table is exhausted. Cells beyond the header width are dropped; headers
// beyond the row width are simply absent from the map.
func (t *Table) Next() (Row, error) {
	record, err := t.reader.Read()
	if err != nil {
		return nil, err
	}

	row := make(Row, len(t.headers))
	for i, header := range t.headers {
		if i < len(record) {
			row[header] = record[i]
		}
	}
	return row, nil
}

// skipBOM consumes a leading UTF-8 byte order mark when present.
func skipBOM(br *bufio.Reader) error {
	bom, err := br.Peek(3)
	if err != nil {
		// Shorter than a BOM; let the CSV reader see whatever is there.
		return nil
	}
	if bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		if _, err := br.Discard(3); err != nil {
			return err
		}
	}
	return nil
}

// journal/csv.go
package journal

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Columns is the fixed CSV header shared by export and import.
var Columns = []string{"Bar", "Bull", "Bear", "TR", "Bias"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExportCSV writes the whole session, one row per bar in fixed session order.
// Multi-entry cells join their list with embedded newlines.
func (s *Store) ExportCSV(w io.Writer) error {
	s.mu.Lock()
	snap := s.session.Clone()
	s.mu.Unlock()

	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, key := range BarOrder {
		rec, ok := snap[key]
		if !ok {
			rec = &BarRecord{}
		}
		row := []string{
			string(key),
			strings.Join(rec.Bull, "\n"),
			strings.Join(rec.Bear, "\n"),
			strings.Join(rec.TR, "\n"),
			strings.Join(rec.Bias, "\n"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV reads an exported session and overwrites each listed bar's four
// category lists wholesale; timestamps are untouched. On success the undo
// history is cleared: a bulk import is not reversible. Rows applied before a
// mid-file read error stay applied.
func (s *Store) ImportCSV(r io.Reader) error {
	br := bufio.NewReader(r)
	// Tolerate the UTF-8 BOM that spreadsheet exports prepend.
	if b, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(b, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty csv")
		}
		return fmt.Errorf("read header: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		rec := s.ensureBar(ParseBarKey(row[0]))
		for i, cat := range Categories {
			rec.setList(cat, splitCell(row, i+1))
		}
	}

	s.history = nil
	s.scheduleSave()
	return nil
}

// splitCell splits a category cell on newlines, dropping blank lines.
func splitCell(row []string, i int) []string {
	out := []string{}
	if i >= len(row) {
		return out
	}
	for _, line := range strings.Split(row[i], "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

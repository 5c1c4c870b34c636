package grid

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Table is a grid read from csv. The first record is the header.
type Table struct {
	Header []string
	Rows   [][]string
}

func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Table{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	table := &Table{Header: header}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		table.Rows = append(table.Rows, record)
	}
	return table, nil
}

func LoadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()
	return ReadCSV(file)
}

func (table *Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if len(table.Header) != 0 {
		if err := writer.Write(table.Header); err != nil {
			return err
		}
	}
	if err := writer.WriteAll(table.Rows); err != nil {
		return err
	}
	return writer.Error()
}

// SaveCSV writes the table to path, creating directories as needed.
func (table *Table) SaveCSV(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err = table.WriteCSV(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (table *Table) ColumnIndex(name string) (int, bool) {
	for i, col := range table.Header {
		if col == name {
			return i, true
		}
	}
	return -1, false
}

// Cell returns "" for cells past the end of a short row.
func (table *Table) Cell(row, col int) string {
	record := table.Rows[row]
	if col < 0 || col >= len(record) {
		return ""
	}
	return record[col]
}

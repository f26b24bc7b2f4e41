// Package bulkcsv parses and renders the product bulk-import CSV format.
package bulkcsv

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"

	"skyelectro/internal/domain/entity"
)

// Header is the fixed column contract of the import CSV. Column order is part
// of the contract.
var Header = []string{
	"name",
	"description",
	"price",
	"original_price",
	"discount",
	"stock",
	"category",
	"brand",
	"specifications",
	"features",
	"tags",
	"images",
	"dimensions",
	"sku",
	"is_active",
	"is_featured",
}

// Record is one data row with its raw column values. Row is the 1-based row
// number in the file, counting the header as row 1, so the first data row is
// row 2.
type Record struct {
	Row            int
	Name           string
	Description    string
	Price          string
	OriginalPrice  string
	Discount       string
	Stock          string
	Category       string
	Brand          string
	Specifications string
	Features       string
	Tags           string
	Images         string
	Dimensions     string
	SKU            string
	IsActive       string
	IsFeatured     string
}

// ErrHeaderMismatch is returned when the uploaded file does not carry the
// expected header row.
var ErrHeaderMismatch = errors.New("csv header does not match the product template")

// BadRow records a data row that could not be parsed at all (wrong field
// count). Such rows are reported alongside validation failures; they never
// abort the batch.
type BadRow struct {
	Row    int
	Reason string
}

// Parse reads the whole CSV and returns its data records plus any rows that
// failed structural parsing. Per-field validation is the importer's job, so
// one bad value never aborts the batch.
func Parse(r io.Reader) ([]Record, []BadRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = len(Header)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errors.WithStack(ErrHeaderMismatch)
		}

		return nil, nil, errors.Wrap(err, "failed to read csv header")
	}

	if !headerMatches(header) {
		return nil, nil, errors.WithStack(ErrHeaderMismatch)
	}

	var (
		records []Record
		badRows []BadRow
	)
	row := 1 // header consumed
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				badRows = append(badRows, BadRow{Row: row, Reason: "malformed row: " + parseErr.Err.Error()})

				continue
			}

			return nil, nil, errors.Wrapf(err, "failed to read csv row %d", row)
		}

		records = append(records, Record{
			Row:            row,
			Name:           strings.TrimSpace(fields[0]),
			Description:    strings.TrimSpace(fields[1]),
			Price:          strings.TrimSpace(fields[2]),
			OriginalPrice:  strings.TrimSpace(fields[3]),
			Discount:       strings.TrimSpace(fields[4]),
			Stock:          strings.TrimSpace(fields[5]),
			Category:       strings.TrimSpace(fields[6]),
			Brand:          strings.TrimSpace(fields[7]),
			Specifications: strings.TrimSpace(fields[8]),
			Features:       strings.TrimSpace(fields[9]),
			Tags:           strings.TrimSpace(fields[10]),
			Images:         strings.TrimSpace(fields[11]),
			Dimensions:     strings.TrimSpace(fields[12]),
			SKU:            strings.TrimSpace(fields[13]),
			IsActive:       strings.TrimSpace(fields[14]),
			IsFeatured:     strings.TrimSpace(fields[15]),
		})
	}

	return records, badRows, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(Header) {
		return false
	}
	for i, col := range header {
		if !strings.EqualFold(strings.TrimSpace(col), Header[i]) {
			return false
		}
	}

	return true
}

// Template renders the downloadable CSV template: the header plus one sample
// row showing the sub-field delimiters.
func Template() []byte {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	_ = writer.Write(Header)
	_ = writer.Write([]string{
		"Wireless Mouse M220",
		"Silent wireless mouse with 18-month battery life",
		"1299",
		"1499",
		"10",
		"250",
		"Accessories",
		"Logitech",
		"Connectivity:2.4 GHz|Battery:AA x1",
		"Silent clicks|Plug and play",
		"mouse|wireless",
		"https://cdn.example.com/m220.jpg",
		"99x60x39 mm",
		"ACC-LOG-WIR-042",
		"true",
		"false",
	})
	writer.Flush()

	return buf.Bytes()
}

// ParseSpecifications splits the pipe-delimited "Name:Value" sub-field.
// Malformed entries (no colon, empty name or value) are dropped silently
// rather than failing the row.
func ParseSpecifications(raw string) []entity.Specification {
	if raw == "" {
		return nil
	}

	var specs []entity.Specification
	for _, part := range strings.Split(raw, "|") {
		name, value, found := strings.Cut(part, ":")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		specs = append(specs, entity.Specification{Name: name, Value: value})
	}

	return specs
}

// ParseList splits a pipe-delimited list sub-field, dropping empty entries.
func ParseList(raw string) []string {
	if raw == "" {
		return nil
	}

	var items []string
	for _, part := range strings.Split(raw, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		items = append(items, part)
	}

	return items
}

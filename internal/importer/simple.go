package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// SimpleParser parses the splittab CSV format:
// date,payer,item,amount,consumer with a header row.
type SimpleParser struct{}

const (
	simpleDateFormat = "2006-01-02"
	simpleNumFields  = 5
	simpleColDate    = 0
	simpleColPayer   = 1
	simpleColItem    = 2
	simpleColAmount  = 3
	simpleColCons    = 4
)

// Format returns the parser name.
func (p *SimpleParser) Format() string { return "simple" }

// Parse reads the CSV and returns one Row per record.
func (p *SimpleParser) Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = simpleNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading expense CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := parseSimpleRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseSimpleRow(rec []string) (Row, error) {
	date, err := time.Parse(simpleDateFormat, rec[simpleColDate])
	if err != nil {
		return Row{}, fmt.Errorf("parsing date %q: %w", rec[simpleColDate], err)
	}

	amount, err := decimal.NewFromString(rec[simpleColAmount])
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", rec[simpleColAmount], err)
	}

	return Row{
		Date:     date,
		Payer:    rec[simpleColPayer],
		Item:     rec[simpleColItem],
		Amount:   amount,
		Consumer: rec[simpleColCons],
	}, nil
}

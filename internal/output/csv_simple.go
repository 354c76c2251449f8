package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/nettogo/internal/domain"
)

// CSVFormatter writes one row per scenario
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(results []domain.Result) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"ID", "Year", "Gross", "Age", "HasChildren", "KV", "PV", "RV", "AV", "TaxableIncome", "IncomeTax", "Soli", "Net", "Status", "Error"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range Rows(results) {
		record := []string{
			strconv.Itoa(row.ID),
			strconv.Itoa(row.Year),
			row.Gross,
			strconv.Itoa(row.Age),
			strconv.FormatBool(row.HasChildren),
			row.KV,
			row.PV,
			row.RV,
			row.AV,
			row.TaxableIncome,
			row.IncomeTax,
			row.Soli,
			row.Net,
			row.Status,
			row.Error,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders evaluation results in one output format
type Formatter interface {
	Name() string
	Format(results []domain.Result) ([]byte, error)
}

var formatters = map[string]Formatter{}

func register(f Formatter) {
	formatters[f.Name()] = f
}

func init() {
	register(ConsoleFormatter{})
	register(ConsoleVerboseFormatter{})
	register(HTMLFormatter{})
	register(CSVFormatter{})
	register(JSONFormatter{Pretty: true})
	register(YAMLFormatter{})
}

// GetFormatterByName returns the formatter registered under name, or nil
func GetFormatterByName(name string) Formatter {
	return formatters[name]
}

// FormatterNames lists the registered formatter names
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for n := range formatters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// GenerateReport writes results to w in the named format
func GenerateReport(w io.Writer, results []domain.Result, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unsupported format: %s", format)
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("format %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}

// Status values of a Row
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	StatusError       = "error"
)

// Row is the presentation form of one result. Amounts are rounded to cents;
// unavailable amounts are empty.
type Row struct {
	ID            int    `json:"id" yaml:"id"`
	Year          int    `json:"year" yaml:"year"`
	Gross         string `json:"gross" yaml:"gross"`
	Age           int    `json:"age" yaml:"age"`
	HasChildren   bool   `json:"has_children" yaml:"has_children"`
	KV            string `json:"kv,omitempty" yaml:"kv,omitempty"`
	PV            string `json:"pv,omitempty" yaml:"pv,omitempty"`
	RV            string `json:"rv,omitempty" yaml:"rv,omitempty"`
	AV            string `json:"av,omitempty" yaml:"av,omitempty"`
	TaxableIncome string `json:"taxable_income,omitempty" yaml:"taxable_income,omitempty"`
	IncomeTax     string `json:"income_tax,omitempty" yaml:"income_tax,omitempty"`
	Soli          string `json:"soli,omitempty" yaml:"soli,omitempty"`
	Net           string `json:"net,omitempty" yaml:"net,omitempty"`
	Status        string `json:"status" yaml:"status"`
	Error         string `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind     string `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
}

// NewRow converts a result into its presentation form
func NewRow(r domain.Result) Row {
	s := r.Scenario
	row := Row{
		ID:          s.ID,
		Year:        s.Year,
		Gross:       FormatAmount(s.GrossMonthly),
		Age:         s.Age,
		HasChildren: s.HasChildren,
		Status:      StatusOK,
	}

	if r.Err != nil && !domain.IsUnavailable(r.Err) {
		row.Status = StatusError
		row.Error = r.Err.Error()
		row.ErrorKind = domain.ErrorKind(r.Err)
		return row
	}

	b := r.Breakdown
	row.KV = FormatAmount(b.KV)
	row.PV = FormatAmount(b.PV)
	row.RV = FormatAmount(b.RV)
	row.AV = FormatAmount(b.AV)
	row.TaxableIncome = FormatAmount(b.TaxableIncome)
	row.IncomeTax = FormatOptional(b.IncomeTax)
	row.Soli = FormatOptional(b.Soli)
	row.Net = FormatOptional(b.Net)

	if r.Err != nil {
		row.Status = StatusUnavailable
		row.Error = fmt.Sprintf("data not available for %d", s.Year)
		row.ErrorKind = domain.ErrorKind(r.Err)
	}
	return row
}

// Rows converts every result
func Rows(results []domain.Result) []Row {
	rows := make([]Row, len(results))
	for i, r := range results {
		rows[i] = NewRow(r)
	}
	return rows
}

// FormatAmount rounds to two decimal places
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatOptional rounds a value that may be unavailable; unavailable values are empty
func FormatOptional(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return ""
	}
	return amount.Decimal.StringFixed(2)
}

// FormatCurrency formats an amount in euros
func FormatCurrency(amount decimal.Decimal) string {
	return FormatAmount(amount) + " €"
}

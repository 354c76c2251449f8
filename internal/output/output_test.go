package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/nettogo/internal/calculation"
	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResults(t *testing.T) []domain.Result {
	t.Helper()
	rate := decimal.RequireFromString("1.7")
	scenarios := []domain.Scenario{
		{ID: 1, Year: 2024, GrossMonthly: decimal.NewFromInt(3000), Age: 30, AdditionalKVRate: rate},
		{ID: 2, Year: 2025, GrossMonthly: decimal.NewFromInt(3000), Age: 30, AdditionalKVRate: rate, HasChildren: true},
		{ID: 3, Year: 2019, GrossMonthly: decimal.NewFromInt(3000), Age: 30, AdditionalKVRate: rate},
	}
	return calculation.NewEngine().EvaluateAll(scenarios)
}

func TestNewRow(t *testing.T) {
	rows := Rows(sampleResults(t))
	require.Len(t, rows, 3)

	ok := rows[0]
	assert.Equal(t, StatusOK, ok.Status)
	assert.Equal(t, "3000.00", ok.Gross)
	assert.Equal(t, "244.50", ok.KV)
	assert.Equal(t, "69.00", ok.PV)
	assert.Equal(t, "279.00", ok.RV)
	assert.Equal(t, "39.00", ok.AV)
	assert.Equal(t, "317.09", ok.IncomeTax)
	assert.Equal(t, "0.00", ok.Soli)
	assert.Equal(t, "2051.41", ok.Net)
	assert.Empty(t, ok.Error)

	unavailable := rows[1]
	assert.Equal(t, StatusUnavailable, unavailable.Status)
	assert.Equal(t, "51.00", unavailable.PV)
	assert.Empty(t, unavailable.IncomeTax)
	assert.Empty(t, unavailable.Net)
	assert.Equal(t, "data not available for 2025", unavailable.Error)
	assert.Equal(t, "formula_unavailable", unavailable.ErrorKind)

	failed := rows[2]
	assert.Equal(t, StatusError, failed.Status)
	assert.Empty(t, failed.KV)
	assert.Equal(t, "unsupported_year", failed.ErrorKind)
	assert.Contains(t, failed.Error, "unsupported year 2019")
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "csv", "detailed", "html", "json", "yaml"} {
		f := GetFormatterByName(name)
		if assert.NotNil(t, f, name) {
			assert.Equal(t, name, f.Name())
		}
	}
	assert.Nil(t, GetFormatterByName("pdf"))
	assert.Equal(t, []string{"console", "csv", "detailed", "html", "json", "yaml"}, FormatterNames())
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleResults(t))
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "GROSS-TO-NET MONTHLY BREAKDOWN")
	assert.Contains(t, out, "2051.41")
	assert.Contains(t, out, "n/a")
	assert.Contains(t, out, "#2: data not available for 2025")
	assert.Contains(t, out, "#3: scenario 3: unsupported year 2019")
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleResults(t))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "ID", records[0][0])
	assert.Equal(t, "2051.41", records[1][12])
	assert.Equal(t, "", records[2][12])
	assert.Equal(t, "unavailable", records[2][13])
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleResults(t))
	require.NoError(t, err)

	var doc struct {
		Results []Row `json:"results"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Results, 3)
	assert.Equal(t, "244.50", doc.Results[0].KV)
	assert.Equal(t, StatusUnavailable, doc.Results[1].Status)
	assert.NotContains(t, string(data), "\"net\":\"\"")
}

func TestYAMLFormatter(t *testing.T) {
	data, err := YAMLFormatter{}.Format(sampleResults(t))
	require.NoError(t, err)

	var doc struct {
		Results []Row `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "2051.41", doc.Results[0].Net)
	assert.Equal(t, "error", doc.Results[2].Status)
}

func TestGenerateReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GenerateReport(&buf, sampleResults(t), "csv"))
	assert.True(t, strings.HasPrefix(buf.String(), "ID,Year,Gross"))

	err := GenerateReport(&buf, nil, "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "1234.57 €", FormatCurrency(decimal.RequireFromString("1234.565")))
	assert.Equal(t, "", FormatOptional(decimal.NullDecimal{}))
}

func TestConsoleVerboseFormatter(t *testing.T) {
	data, err := ConsoleVerboseFormatter{}.Format(sampleResults(t))
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "DETAILED GROSS-TO-NET ANALYSIS")
	assert.Contains(t, out, DefaultAssumptions[0])
	assert.Contains(t, out, "SCENARIO 1: 2024, age 30, childless")
	assert.Contains(t, out, "2051.41 €")
	assert.Contains(t, out, "Note: tax data not available for 2025")
	assert.Contains(t, out, "Error: scenario 3: unsupported year 2019")
}

func TestHTMLFormatter(t *testing.T) {
	data, err := HTMLFormatter{}.Format(sampleResults(t))
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<td>2051.41</td>")
	assert.Contains(t, out, `<td class="na">n/a</td>`)
	assert.Contains(t, out, `<tr class="error">`)
	assert.Contains(t, out, "data not available for 2025")
}

func TestEncodeJSON(t *testing.T) {
	v := map[string]int{"id": 1}

	compact, err := EncodeJSON(v, false)
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, string(compact))

	pretty, err := EncodeJSON(v, true)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"id\": 1\n}", string(pretty))

	_, err = EncodeJSON(make(chan int), false)
	assert.Error(t, err)
}

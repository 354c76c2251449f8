package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/nettogo/internal/breakeven"
	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenariosFile = "../../testdata/scenarios.yaml"

// run executes the CLI with args and returns stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), ".env")}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "netto", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	out, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestCommandSubcommands(t *testing.T) {
	cmd := newRootCmd()
	expected := []string{"calculate", "validate", "compare", "break-even", "constants", "serve", "tui", "version"}

	for _, name := range expected {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestCalculate_CSV(t *testing.T) {
	out, err := run(t, "calculate", scenariosFile, "--format", "csv")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, "ID", records[0][0])
	assert.Equal(t, "2051.41", records[1][12])
	assert.Equal(t, "unavailable", records[4][13])
}

func TestCalculate_JSON(t *testing.T) {
	out, err := run(t, "calculate", scenariosFile, "-f", "json")
	require.NoError(t, err)

	var doc struct {
		Results []struct {
			ID        int    `json:"id"`
			Net       string `json:"net"`
			Status    string `json:"status"`
			ErrorKind string `json:"error_kind"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Results, 4)
	assert.Equal(t, "2051.41", doc.Results[0].Net)
	assert.Equal(t, "formula_unavailable", doc.Results[3].ErrorKind)
}

func writeScenarios(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const mixedYears = `scenarios:
  - year: 2024
    gross_monthly: 3000
    age: 30
    additional_kv_rate: 1.7
  - year: 2026
    gross_monthly: 3000
    age: 30
    additional_kv_rate: 1.7
`

func TestCalculate_UnsupportedYearFailsOnlyItsScenario(t *testing.T) {
	out, err := run(t, "calculate", writeScenarios(t, mixedYears), "-f", "json")
	require.NoError(t, err)

	var doc struct {
		Results []struct {
			ID        int    `json:"id"`
			Net       string `json:"net"`
			Status    string `json:"status"`
			ErrorKind string `json:"error_kind"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Results, 2)
	assert.Equal(t, "2051.41", doc.Results[0].Net)
	assert.Equal(t, "ok", doc.Results[0].Status)
	assert.Equal(t, 2, doc.Results[1].ID)
	assert.Equal(t, "unsupported_year", doc.Results[1].ErrorKind)
	assert.Empty(t, doc.Results[1].Net)

	out, err = run(t, "validate", writeScenarios(t, mixedYears))
	require.NoError(t, err)
	assert.Contains(t, out, "is valid (2 scenarios)")
	assert.Contains(t, out, "Warning: scenario 2: unsupported year 2026")
}

func TestCalculate_FormatFromEnvironment(t *testing.T) {
	t.Setenv("NETTO_FORMAT", "csv")

	out, err := run(t, "calculate", scenariosFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ID,Year,"))
}

func TestCalculate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing file", []string{"calculate", "does-not-exist.yaml"}, "failed to read file"},
		{"unknown format", []string{"calculate", scenariosFile, "--format", "pdf"}, "unsupported format: pdf"},
		{"missing constants", []string{"calculate", scenariosFile, "--constants", "nope.yaml"}, "failed to open constants file"},
		{"no argument", []string{"calculate"}, "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", scenariosFile)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid (4 scenarios)")
}

func TestCompare(t *testing.T) {
	out, err := run(t, "compare", scenariosFile, "--base", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "GROSS-TO-NET SCENARIO COMPARISON")
	assert.Contains(t, out, "(base)")
	assert.Contains(t, out, "RECOMMENDATIONS")

	out, err = run(t, "compare", scenariosFile, "--base", "2", "--format", "csv")
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 5)
	assert.Equal(t, "2", records[1][0])

	_, err = run(t, "compare", scenariosFile, "--base", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base scenario 9 not found")
}

func TestCompare_Variants(t *testing.T) {
	out, err := run(t, "compare", scenariosFile, "--format", "csv",
		"--transform", "raise_gross:percent=10;set_children:children=yes",
		"--template", "first_child")
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)
	assert.Equal(t, "5", records[5][0])
	assert.Equal(t, "6", records[6][0])

	out, err = run(t, "compare", scenariosFile, "--transform", "set_year:year=2026")
	require.NoError(t, err)
	assert.Contains(t, out, "Not Compared: #5")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"bad transform", []string{"--transform", "raise_gross"}, "invalid transform spec"},
		{"unknown template", []string{"--template", "retire_early"}, "unknown template: retire_early"},
		{"base without tariff", []string{"--base", "4", "--template", "next_year"}, "base scenario 4 cannot be compared"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, append([]string{"compare", scenariosFile}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConstants(t *testing.T) {
	out, err := run(t, "constants")
	require.NoError(t, err)
	assert.Contains(t, out, "year: 2024")
	assert.Contains(t, out, "year: 2025")

	out, err = run(t, "constants", "2024", "--format", "json")
	require.NoError(t, err)
	var c domain.YearConstants
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, 2024, c.Year)

	_, err = run(t, "constants", "2019")
	var uye *domain.UnsupportedYearError
	assert.True(t, errors.As(err, &uye))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "netto dev")
}

func TestBreakEven(t *testing.T) {
	out, err := run(t, "break-even", scenariosFile, "--target", "2500", "--sweep", "250")
	require.NoError(t, err)
	assert.Contains(t, out, "BREAK-EVEN GROSS SALARY")
	assert.Contains(t, out, "Required Gross:")
	assert.Contains(t, out, "Kept %")

	out, err = run(t, "break-even", scenariosFile, "--target", "2500", "--format", "json")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, true, doc["success"])

	_, err = run(t, "break-even", scenariosFile, "--target", "2500", "--scenario", "4")
	var be *breakeven.BreakEvenError
	require.Error(t, err)
	assert.True(t, errors.As(err, &be))
	assert.True(t, domain.IsUnavailable(err))

	_, err = run(t, "break-even", scenariosFile)
	assert.Error(t, err)
}

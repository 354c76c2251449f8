package calculation

import (
	"testing"

	"github.com/rgehrsitz/nettogo/internal/constants"
	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func assertAmount(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2), msgAndArgs...)
}

func scenario2024(gross string) domain.Scenario {
	return domain.Scenario{
		ID:               1,
		Year:             2024,
		GrossMonthly:     decimal.RequireFromString(gross),
		Age:              30,
		AdditionalKVRate: decimal.RequireFromString("1.7"),
	}
}

func TestAssessableBase(t *testing.T) {
	ceiling := decimal.NewFromInt(5175)
	assert.True(t, AssessableBase(decimal.NewFromInt(3000), ceiling).Equal(decimal.NewFromInt(3000)))
	assert.True(t, AssessableBase(decimal.NewFromInt(9000), ceiling).Equal(ceiling))
	assert.True(t, AssessableBase(decimal.Zero, ceiling).IsZero())
}

func TestContributions_2024Example(t *testing.T) {
	c := constants.Year2024()
	s := scenario2024("3000")

	assertAmount(t, "244.50", HealthInsurance(s, c, false), "KV")
	assertAmount(t, "69.00", CareInsurance(s, c, true), "PV")
	assertAmount(t, "279.00", PensionInsurance(s, c), "RV")
	assertAmount(t, "39.00", UnemploymentInsurance(s, c), "AV")

	// Reduced rate (14% instead of 14.6%) is only used for the deductible portion
	assertAmount(t, "235.50", HealthInsurance(s, c, true), "KV reduced")
	// Employer side never carries the childless surcharge
	assertAmount(t, "51.00", CareInsurance(s, c, false), "PV employer")
}

func TestContributions_CappedAtCeiling(t *testing.T) {
	c := constants.Year2024()
	atKVCeiling := scenario2024("5175")
	aboveKVCeiling := scenario2024("6000")
	atRVCeiling := scenario2024("7550")
	farAbove := scenario2024("25000")

	assert.True(t, HealthInsurance(atKVCeiling, c, false).Equal(HealthInsurance(farAbove, c, false)))
	assert.True(t, CareInsurance(aboveKVCeiling, c, true).Equal(CareInsurance(farAbove, c, true)))
	assert.True(t, PensionInsurance(atRVCeiling, c).Equal(PensionInsurance(farAbove, c)))
	assert.True(t, UnemploymentInsurance(atRVCeiling, c).Equal(UnemploymentInsurance(farAbove, c)))

	// RV/AV keep growing between the two ceilings
	assert.True(t, PensionInsurance(aboveKVCeiling, c).GreaterThan(PensionInsurance(atKVCeiling, c)))
}

func TestCareInsurance_ChildlessSurcharge(t *testing.T) {
	c := constants.Year2024()

	tests := []struct {
		name        string
		age         int
		hasChildren bool
		want        string
	}{
		{"childless adult pays surcharge", 30, false, "69.00"},
		{"parent", 30, true, "51.00"},
		{"childless under 23", 22, false, "51.00"},
		{"childless exactly 23", 23, false, "69.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scenario2024("3000")
			s.Age = tt.age
			s.HasChildren = tt.hasChildren
			assertAmount(t, tt.want, CareInsurance(s, c, true))
		})
	}
}

func TestCareInsurance_ChildlessStrictlyHigher(t *testing.T) {
	c := constants.Year2024()
	for _, gross := range []string{"1", "1500", "3000", "5175", "12000"} {
		childless := scenario2024(gross)
		parent := childless
		parent.HasChildren = true
		assert.True(t, CareInsurance(childless, c, true).GreaterThan(CareInsurance(parent, c, true)), "gross %s", gross)
	}
}

func TestContributions_NonNegativeAndBoundedByGross(t *testing.T) {
	for _, c := range []domain.YearConstants{constants.Year2024(), constants.Year2025()} {
		for _, gross := range []string{"0", "0.01", "520", "2500", "5175", "8050", "20000"} {
			for _, age := range []int{16, 23, 67} {
				s := domain.Scenario{
					Year:             c.Year,
					GrossMonthly:     decimal.RequireFromString(gross),
					Age:              age,
					AdditionalKVRate: decimal.RequireFromString("2.5"),
				}
				contrib := EmployeeContributions(s, c)
				for name, v := range map[string]decimal.Decimal{"KV": contrib.KV, "PV": contrib.PV, "RV": contrib.RV, "AV": contrib.AV} {
					assert.False(t, v.IsNegative(), "%s negative for gross %s", name, gross)
					assert.True(t, v.LessThanOrEqual(s.GrossMonthly), "%s exceeds gross %s", name, gross)
				}
				assert.True(t, contrib.Total().LessThanOrEqual(s.GrossMonthly))
			}
		}
	}
}

func TestTaxableIncome_2024Example(t *testing.T) {
	c := constants.Year2024()
	s := scenario2024("3000")

	// 36000 - (235.50 + 69 + 279) * 12 - 1230 - 36
	assertAmount(t, "583.50", DeductibleContributions(s, c))
	assertAmount(t, "27732.00", TaxableIncome(s, c))
}

func TestTaxableIncome_ZeroGross(t *testing.T) {
	c := constants.Year2024()
	s := scenario2024("0")
	assertAmount(t, "-1266.00", TaxableIncome(s, c))
}

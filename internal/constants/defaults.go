package constants

import (
	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
)

// Built-in values as published for 2024. The 2025 tariff and solidarity
// surcharge thresholds are left undefined until they are entered.

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

// Year2024 returns the 2024 constants
func Year2024() domain.YearConstants {
	return domain.YearConstants{
		Year: 2024,
		HealthCare: domain.KVPVConstants{
			Ceiling:         d("5175"),
			KVRate:          d("14.6"),
			KVReducedRate:   d("14"),
			PVRate:          d("3.4"),
			PVChildlessRate: d("0.6"),
		},
		Pension: domain.RVAVConstants{
			Ceiling: d("7550"),
			RVRate:  d("18.6"),
			AVRate:  d("2.6"),
		},
		IncomeTax: &domain.TaxBrackets{
			BasicAllowance: d("11604"),
			FirstZoneEnd:   d("17005"),
			SecondZoneEnd:  d("66760"),
			TopZoneStart:   d("277825"),
			C1:             d("922.98"),
			C2:             d("1400"),
			C3:             d("181.19"),
			C4:             d("2397"),
			C5:             d("1025.38"),
			R1:             d("0.42"),
			K1:             d("10602.13"),
			R2:             d("0.45"),
			K2:             d("18936.88"),
		},
		WorkExpenseAllowance: d("1230"),
		Soli: domain.SoliConstants{
			Rate:              d("5.5"),
			AnnualExemption:   dp("18130"),
			ReliefZonePercent: dp("11.9"),
		},
	}
}

// Year2025 returns the 2025 constants. IncomeTax and the Soli thresholds are nil.
func Year2025() domain.YearConstants {
	return domain.YearConstants{
		Year: 2025,
		HealthCare: domain.KVPVConstants{
			Ceiling:         d("5512.5"),
			KVRate:          d("14.6"),
			KVReducedRate:   d("14"),
			PVRate:          d("3.4"),
			PVChildlessRate: d("0.6"),
		},
		Pension: domain.RVAVConstants{
			Ceiling: d("8050"),
			RVRate:  d("18.6"),
			AVRate:  d("2.6"),
		},
		WorkExpenseAllowance: d("1230"),
		Soli: domain.SoliConstants{
			Rate: d("5.5"),
		},
	}
}

// Default returns the built-in table covering 2024 and 2025
func Default() *Table {
	t, err := New(Year2024(), Year2025())
	if err != nil {
		panic("constants: invalid built-in table: " + err.Error())
	}
	return t
}

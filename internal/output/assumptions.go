package output

// DefaultAssumptions lists the modeling assumptions rendered in detailed outputs
var DefaultAssumptions = []string{
	"Employee share only: statutory rates are split half and half with the employer",
	"Childless care surcharge applies from age 23 and is paid by the employee alone",
	"Tax class I, no church tax, no further allowances beyond the work expense and special expense lump sums",
	"Deductible health insurance uses the reduced KV rate plus the additional rate",
	"Monthly wage tax is one twelfth of the annual tariff",
	"Amounts are rounded to the cent for display only",
}

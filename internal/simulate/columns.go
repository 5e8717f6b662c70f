package simulate

// Output column names. Keep these stable; they are the CSV header and the
// JSON keys clients read.
const (
	ColUnemploymentRate     = "unemployment_rate"
	ColNaturalUnemployment  = "natural_unemployment"
	ColUnemploymentGap      = "unemployment_gap"
	ColCorePCEInflation     = "core_pce_inflation"
	ColHeadlinePCEInflation = "headline_pce_inflation"
	ColCPIInflation         = "cpi_inflation"
	ColGDPDeflatorInflation = "gdp_deflator_inflation"
	ColHeadlineWedge        = "headline_wedge"
	ColCPIWedge             = "cpi_wedge"
	ColGDPWedge             = "gdp_wedge"
	ColRealGDP              = "real_gdp"
	ColPotentialGDP         = "potential_gdp"
	ColRealGDPGrowth        = "real_gdp_growth"
	ColOutputGap            = "output_gap"
	ColPolicyRate           = "policy_rate"
	ColThreeMonthTBill      = "three_month_tbill"
	ColExpectedShortRate5Y  = "expected_short_rate_5y"
	ColExpectedShortRate10Y = "expected_short_rate_10y"
	ColTermPremium5Y        = "term_premium_5y"
	ColTermPremium10Y       = "term_premium_10y"
	ColYield5Y              = "yield_5y"
	ColYield10Y             = "yield_10y"
	ColBBBSpread            = "bbb_spread"
	ColBBBYield             = "bbb_yield"
	ColNominalGDP           = "nominal_gdp"
	ColNominalDPI           = "nominal_dpi"
)

// ColumnInfo documents one output column.
type ColumnInfo struct {
	Name        string
	Description string
	Units       string
}

var columnCatalog = []ColumnInfo{
	{ColUnemploymentRate, "Unemployment rate, seeded then extended by the gap AR(2)", "percent"},
	{ColNaturalUnemployment, "Natural rate of unemployment", "percent"},
	{ColUnemploymentGap, "Unemployment minus natural unemployment", "percentage points"},
	{ColCorePCEInflation, "Core PCE inflation", "percent, annualized"},
	{ColHeadlinePCEInflation, "Headline PCE inflation (core plus headline wedge)", "percent, annualized"},
	{ColCPIInflation, "CPI inflation (intercept plus headline plus CPI wedge)", "percent, annualized"},
	{ColGDPDeflatorInflation, "GDP deflator inflation (headline plus GDP wedge)", "percent, annualized"},
	{ColHeadlineWedge, "Headline-over-core PCE wedge", "percentage points"},
	{ColCPIWedge, "CPI wedge", "percentage points"},
	{ColGDPWedge, "GDP deflator wedge", "percentage points"},
	{ColRealGDP, "Real GDP level via Okun's law", "level"},
	{ColPotentialGDP, "Potential GDP level", "level"},
	{ColRealGDPGrowth, "Real GDP growth; undefined (null) in period 0", "percent, annualized"},
	{ColOutputGap, "100 times log of real over potential GDP", "percent"},
	{ColPolicyRate, "Policy rate from the inertial Taylor rule, floored at 0.125", "percent"},
	{ColThreeMonthTBill, "Three-month Treasury bill rate", "percent"},
	{ColExpectedShortRate5Y, "Average expected policy rate over the next 20 quarters", "percent"},
	{ColExpectedShortRate10Y, "Average expected policy rate over the next 40 quarters", "percent"},
	{ColTermPremium5Y, "Five-year term premium", "percent"},
	{ColTermPremium10Y, "Ten-year term premium", "percent"},
	{ColYield5Y, "Five-year Treasury yield", "percent"},
	{ColYield10Y, "Ten-year Treasury yield", "percent"},
	{ColBBBSpread, "BBB corporate bond spread over the ten-year yield", "percentage points"},
	{ColBBBYield, "BBB corporate bond yield", "percent"},
	{ColNominalGDP, "Nominal GDP level", "level"},
	{ColNominalDPI, "Nominal disposable personal income level", "level"},
}

// Columns returns the output column names in table order.
func Columns() []string {
	out := make([]string, len(columnCatalog))
	for i, c := range columnCatalog {
		out[i] = c.Name
	}
	return out
}

// ColumnCatalog returns the documented output columns in table order.
func ColumnCatalog() []ColumnInfo {
	out := make([]ColumnInfo, len(columnCatalog))
	copy(out, columnCatalog)
	return out
}

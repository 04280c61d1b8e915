package calc

// ROIInput is the fixed input record for an automation ROI estimate.
// Percentages are given as whole numbers (15 means 15%).
type ROIInput struct {
	InitialInvestment    float64 `json:"initialInvestment"`
	CurrentAnnualCosts   float64 `json:"currentAnnualCosts"`
	LaborSavings         float64 `json:"laborSavings"`
	ProductivityGain     float64 `json:"productivityGain"`
	QualityImprovement   float64 `json:"qualityImprovement"`
	EnergySavings        float64 `json:"energySavings"`
	MaintenanceReduction float64 `json:"maintenanceReduction"`
}

// YearProjection is one row of the five-year outlook.
type YearProjection struct {
	Year              int     `json:"year"`
	CumulativeSavings float64 `json:"cumulativeSavings"`
	NetPosition       float64 `json:"netPosition"`
	ROIPercent        float64 `json:"roiPercent"`
}

type ROIResult struct {
	ProductivitySavings float64          `json:"productivitySavings"`
	QualitySavings      float64          `json:"qualitySavings"`
	EnergySavings       float64          `json:"energySavings"`
	MaintenanceSavings  float64          `json:"maintenanceSavings"`
	TotalAnnualSavings  float64          `json:"totalAnnualSavings"`
	PaybackMonths       float64          `json:"paybackMonths"`
	Projection          []YearProjection `json:"projection"`
}

// Weighting factors applied to the percentage-driven savings categories.
// Quality improvements only partially convert to cost savings; energy and
// maintenance are scoped to their share of total annual costs.
const (
	qualityFactor     = 0.5
	energyFactor      = 0.15
	maintenanceFactor = 0.10
	projectionYears   = 5
)

// ComputeROI derives annual savings, payback period and a five-year
// projection. Zero total savings or zero investment short-circuit the
// dependent ratios to zero instead of dividing.
func ComputeROI(in ROIInput) ROIResult {
	var res ROIResult

	res.ProductivitySavings = in.CurrentAnnualCosts * in.ProductivityGain / 100
	res.QualitySavings = in.CurrentAnnualCosts * in.QualityImprovement / 100 * qualityFactor
	res.EnergySavings = in.CurrentAnnualCosts * in.EnergySavings / 100 * energyFactor
	res.MaintenanceSavings = in.CurrentAnnualCosts * in.MaintenanceReduction / 100 * maintenanceFactor

	res.TotalAnnualSavings = in.LaborSavings +
		res.ProductivitySavings +
		res.QualitySavings +
		res.EnergySavings +
		res.MaintenanceSavings

	if res.TotalAnnualSavings > 0 {
		res.PaybackMonths = in.InitialInvestment / res.TotalAnnualSavings * 12
	}

	res.Projection = make([]YearProjection, 0, projectionYears)
	for year := 1; year <= projectionYears; year++ {
		cumulative := res.TotalAnnualSavings * float64(year)
		p := YearProjection{
			Year:              year,
			CumulativeSavings: cumulative,
			NetPosition:       cumulative - in.InitialInvestment,
		}
		if in.InitialInvestment > 0 {
			p.ROIPercent = (cumulative - in.InitialInvestment) / in.InitialInvestment * 100
		}
		res.Projection = append(res.Projection, p)
	}

	return res
}

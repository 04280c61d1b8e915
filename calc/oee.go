package calc

// OEEInput is the fixed input record for an OEE calculation. Time units
// follow the lead-gen form: planned production time in hours, stops and
// downtime in minutes, ideal cycle time in seconds per part.
type OEEInput struct {
	PlannedProductionTime float64 `json:"plannedProductionTime"`
	PlannedStops          float64 `json:"plannedStops"`
	UnplannedDowntime     float64 `json:"unplannedDowntime"`
	IdealCycleTime        float64 `json:"idealCycleTime"`
	TotalPartsProduced    float64 `json:"totalPartsProduced"`
	DefectiveParts        float64 `json:"defectiveParts"`
}

// SixBigLosses decomposes lost production time into the standard OEE loss
// taxonomy, all in minutes.
type SixBigLosses struct {
	Breakdowns float64 `json:"breakdowns"`
	Setup      float64 `json:"setup"`
	MinorStops float64 `json:"minorStops"`
	SpeedLoss  float64 `json:"speedLoss"`
	Defects    float64 `json:"defects"`
	Startup    float64 `json:"startup"`
}

type OEEResult struct {
	RunTimeMinutes float64      `json:"runTimeMinutes"`
	Availability   float64      `json:"availability"`
	Performance    float64      `json:"performance"`
	Quality        float64      `json:"quality"`
	OEE            float64      `json:"oee"`
	IdealRunRate   float64      `json:"idealRunRate"`
	GoodParts      float64      `json:"goodParts"`
	Losses         SixBigLosses `json:"losses"`
	Benchmark      string       `json:"benchmark"`
	Warnings       []string     `json:"warnings,omitempty"`
}

// OEE benchmark bands.
const (
	BenchmarkWorldClass = "world-class"
	BenchmarkTypical    = "typical"
	BenchmarkLow        = "low"
)

// ComputeOEE derives availability, performance, quality and the Six Big
// Losses from a single production run. Every denominator is guarded: a zero
// planned time, run time, cycle time or part count yields zero for the
// dependent ratio rather than NaN or Inf.
func ComputeOEE(in OEEInput) OEEResult {
	var res OEEResult

	plannedMinutes := in.PlannedProductionTime * 60

	res.RunTimeMinutes = plannedMinutes - in.PlannedStops - in.UnplannedDowntime
	if res.RunTimeMinutes < 0 {
		res.RunTimeMinutes = 0
	}

	if plannedMinutes > 0 {
		res.Availability = res.RunTimeMinutes / plannedMinutes
	}

	if in.IdealCycleTime > 0 {
		res.IdealRunRate = 3600 / in.IdealCycleTime
	}

	runTimeSeconds := res.RunTimeMinutes * 60
	if runTimeSeconds > 0 {
		res.Performance = (in.IdealCycleTime * in.TotalPartsProduced) / runTimeSeconds
		if res.Performance > 1 {
			res.Performance = 1
		}
	}

	res.GoodParts = in.TotalPartsProduced - in.DefectiveParts
	if res.GoodParts < 0 {
		res.GoodParts = 0
	}
	if in.TotalPartsProduced > 0 {
		res.Quality = res.GoodParts / in.TotalPartsProduced
	}

	res.OEE = res.Availability * res.Performance * res.Quality
	res.Benchmark = classifyOEE(res.OEE)
	res.Losses = computeLosses(in, res)

	if in.DefectiveParts > in.TotalPartsProduced {
		res.Warnings = append(res.Warnings, "defective parts exceed total parts produced")
	}

	return res
}

func computeLosses(in OEEInput, res OEEResult) SixBigLosses {
	losses := SixBigLosses{
		Breakdowns: in.UnplannedDowntime,
		Setup:      in.PlannedStops,
	}

	theoreticalOutput := (res.RunTimeMinutes / 60) * res.IdealRunRate
	perfLossMinutes := (theoreticalOutput - in.TotalPartsProduced) * in.IdealCycleTime / 60
	if perfLossMinutes < 0 {
		perfLossMinutes = 0
	}
	losses.MinorStops = perfLossMinutes * 0.4
	losses.SpeedLoss = perfLossMinutes * 0.6

	defectLossMinutes := in.DefectiveParts * in.IdealCycleTime / 60
	losses.Defects = defectLossMinutes * 0.9
	losses.Startup = defectLossMinutes * 0.1

	return losses
}

func classifyOEE(oee float64) string {
	switch {
	case oee >= 0.85:
		return BenchmarkWorldClass
	case oee >= 0.40:
		return BenchmarkTypical
	default:
		return BenchmarkLow
	}
}

package calc_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/mfghub/api-go/calc"
)

const tolerance = 1e-9

func TestComputeOEE(t *testing.T) {
	c := qt.New(t)

	res := calc.ComputeOEE(calc.OEEInput{
		PlannedProductionTime: 8,
		PlannedStops:          30,
		UnplannedDowntime:     45,
		IdealCycleTime:        60,
		TotalPartsProduced:    300,
		DefectiveParts:        15,
	})

	c.Assert(res.RunTimeMinutes, qt.Equals, 405.0)
	c.Assert(res.Availability, qt.Equals, 405.0/480.0)
	c.Assert(res.IdealRunRate, qt.Equals, 60.0)
	c.Assert(res.Performance, qt.Equals, (60.0*300.0)/(405.0*60.0))
	c.Assert(res.GoodParts, qt.Equals, 285.0)
	c.Assert(res.Quality, qt.Equals, 0.95)

	wantOEE := (405.0 / 480.0) * ((60.0 * 300.0) / (405.0 * 60.0)) * 0.95
	c.Assert(res.OEE, qt.Equals, wantOEE)
	c.Assert(res.Benchmark, qt.Equals, calc.BenchmarkTypical)
	c.Assert(res.Warnings, qt.HasLen, 0)
}

func TestComputeOEELosses(t *testing.T) {
	c := qt.New(t)

	res := calc.ComputeOEE(calc.OEEInput{
		PlannedProductionTime: 8,
		PlannedStops:          30,
		UnplannedDowntime:     45,
		IdealCycleTime:        60,
		TotalPartsProduced:    300,
		DefectiveParts:        15,
	})

	// theoreticalOutput = (405/60)*60 = 405 parts, so 105 parts of
	// performance loss at 1 min/part.
	c.Assert(res.Losses.Breakdowns, qt.Equals, 45.0)
	c.Assert(res.Losses.Setup, qt.Equals, 30.0)
	c.Assert(res.Losses.MinorStops, qt.Equals, 42.0)
	c.Assert(res.Losses.SpeedLoss, qt.Equals, 63.0)
	c.Assert(res.Losses.Defects, qt.Equals, 13.5)
	c.Assert(res.Losses.Startup, qt.Equals, 1.5)
}

func TestComputeOEEPerformanceCap(t *testing.T) {
	c := qt.New(t)

	// Producing faster than the ideal rate caps performance at 100%.
	res := calc.ComputeOEE(calc.OEEInput{
		PlannedProductionTime: 1,
		IdealCycleTime:        60,
		TotalPartsProduced:    120,
	})
	c.Assert(res.Performance, qt.Equals, 1.0)
}

func TestComputeOEEZeroGuards(t *testing.T) {
	c := qt.New(t)

	res := calc.ComputeOEE(calc.OEEInput{})
	c.Assert(res.Availability, qt.Equals, 0.0)
	c.Assert(res.Performance, qt.Equals, 0.0)
	c.Assert(res.Quality, qt.Equals, 0.0)
	c.Assert(res.OEE, qt.Equals, 0.0)
	c.Assert(res.IdealRunRate, qt.Equals, 0.0)
	c.Assert(res.Benchmark, qt.Equals, calc.BenchmarkLow)

	// Zero part count yields quality 0, not NaN.
	res = calc.ComputeOEE(calc.OEEInput{
		PlannedProductionTime: 8,
		IdealCycleTime:        60,
		TotalPartsProduced:    0,
	})
	c.Assert(res.Quality, qt.Equals, 0.0)

	// Zero cycle time yields zero run rate and performance, not Inf.
	res = calc.ComputeOEE(calc.OEEInput{
		PlannedProductionTime: 8,
		IdealCycleTime:        0,
		TotalPartsProduced:    300,
	})
	c.Assert(res.IdealRunRate, qt.Equals, 0.0)
	c.Assert(res.Performance, qt.Equals, 0.0)

	// Stops exceeding planned time clamp run time at zero.
	res = calc.ComputeOEE(calc.OEEInput{
		PlannedProductionTime: 1,
		PlannedStops:          90,
		IdealCycleTime:        60,
		TotalPartsProduced:    10,
	})
	c.Assert(res.RunTimeMinutes, qt.Equals, 0.0)
	c.Assert(res.Performance, qt.Equals, 0.0)
}

func TestComputeOEEDefectiveWarning(t *testing.T) {
	c := qt.New(t)

	// Flagged, not blocked: good parts clamp at zero.
	res := calc.ComputeOEE(calc.OEEInput{
		PlannedProductionTime: 8,
		IdealCycleTime:        60,
		TotalPartsProduced:    10,
		DefectiveParts:        25,
	})
	c.Assert(res.GoodParts, qt.Equals, 0.0)
	c.Assert(res.Quality, qt.Equals, 0.0)
	c.Assert(res.Warnings, qt.HasLen, 1)
}

func TestOEEReportPDF(t *testing.T) {
	c := qt.New(t)

	in := calc.OEEInput{
		PlannedProductionTime: 8,
		PlannedStops:          30,
		UnplannedDowntime:     45,
		IdealCycleTime:        60,
		TotalPartsProduced:    300,
		DefectiveParts:        15,
	}
	data, err := calc.OEEReportPDF(in, calc.ComputeOEE(in))
	c.Assert(err, qt.IsNil)
	c.Assert(len(data) > 0, qt.IsTrue)
	c.Assert(string(data[:5]), qt.Equals, "%PDF-")
}

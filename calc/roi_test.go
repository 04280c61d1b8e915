package calc_test

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/mfghub/api-go/calc"
)

func TestComputeROI(t *testing.T) {
	c := qt.New(t)

	res := calc.ComputeROI(calc.ROIInput{
		InitialInvestment:    100000,
		CurrentAnnualCosts:   500000,
		LaborSavings:         50000,
		ProductivityGain:     15,
		QualityImprovement:   20,
		EnergySavings:        10,
		MaintenanceReduction: 25,
	})

	c.Assert(res.ProductivitySavings, qt.Equals, 75000.0)
	c.Assert(res.QualitySavings, qt.Equals, 50000.0)
	c.Assert(res.EnergySavings, qt.Equals, 7500.0)
	c.Assert(res.MaintenanceSavings, qt.Equals, 12500.0)
	c.Assert(res.TotalAnnualSavings, qt.Equals, 195000.0)
	c.Assert(math.Abs(res.PaybackMonths-100000.0/195000.0*12) < 1e-9, qt.IsTrue)
}

func TestComputeROIProjection(t *testing.T) {
	c := qt.New(t)

	res := calc.ComputeROI(calc.ROIInput{
		InitialInvestment:    100000,
		CurrentAnnualCosts:   500000,
		LaborSavings:         50000,
		ProductivityGain:     15,
		QualityImprovement:   20,
		EnergySavings:        10,
		MaintenanceReduction: 25,
	})

	c.Assert(res.Projection, qt.HasLen, 5)

	year1 := res.Projection[0]
	c.Assert(year1.Year, qt.Equals, 1)
	c.Assert(year1.CumulativeSavings, qt.Equals, 195000.0)
	c.Assert(year1.NetPosition, qt.Equals, 95000.0)
	c.Assert(year1.ROIPercent, qt.Equals, 95.0)

	year5 := res.Projection[4]
	c.Assert(year5.Year, qt.Equals, 5)
	c.Assert(year5.CumulativeSavings, qt.Equals, 975000.0)
	c.Assert(year5.NetPosition, qt.Equals, 875000.0)
	c.Assert(year5.ROIPercent, qt.Equals, 875.0)
}

func TestComputeROIZeroGuards(t *testing.T) {
	c := qt.New(t)

	// No savings at all: payback stays zero instead of dividing.
	res := calc.ComputeROI(calc.ROIInput{InitialInvestment: 100000})
	c.Assert(res.TotalAnnualSavings, qt.Equals, 0.0)
	c.Assert(res.PaybackMonths, qt.Equals, 0.0)
	for _, p := range res.Projection {
		c.Assert(math.IsNaN(p.ROIPercent), qt.IsFalse)
		c.Assert(math.IsInf(p.ROIPercent, 0), qt.IsFalse)
	}

	// Zero investment: ROI percentages guard the division.
	res = calc.ComputeROI(calc.ROIInput{LaborSavings: 10000})
	c.Assert(res.PaybackMonths, qt.Equals, 0.0)
	for _, p := range res.Projection {
		c.Assert(p.ROIPercent, qt.Equals, 0.0)
		c.Assert(p.NetPosition, qt.Equals, p.CumulativeSavings)
	}
}

func TestROIReportPDF(t *testing.T) {
	c := qt.New(t)

	in := calc.ROIInput{
		InitialInvestment:  100000,
		CurrentAnnualCosts: 500000,
		LaborSavings:       50000,
		ProductivityGain:   15,
	}
	data, err := calc.ROIReportPDF(in, calc.ComputeROI(in))
	c.Assert(err, qt.IsNil)
	c.Assert(len(data) > 0, qt.IsTrue)
	c.Assert(string(data[:5]), qt.Equals, "%PDF-")
}

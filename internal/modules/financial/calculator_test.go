package financial

import (
	"math"
	"testing"
)

func TestRealisticAnnualSavings(t *testing.T) {
	tests := []struct {
		name        string
		hours       float64
		hourlyCost  float64
		license     float64
		maintenance float64
		want        float64
	}{
		{
			name:       "Payroll overhead grosses the saving up",
			hours:      1000,
			hourlyCost: 600,
			want:       684600, // 1000 * 600 * 1.141
		},
		{
			name:        "License and maintenance are subtracted",
			hours:       100,
			hourlyCost:  500,
			license:     10000,
			maintenance: 5000,
			want:        42050, // round(57050) - 15000
		},
		{
			name:        "Floored at zero when costs exceed the saving",
			hours:       10,
			hourlyCost:  100,
			license:     50000,
			maintenance: 50000,
			want:        0,
		},
		{
			name: "Zero everything",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RealisticAnnualSavings(tt.hours, tt.hourlyCost, tt.license, tt.maintenance)
			if got != tt.want {
				t.Errorf("RealisticAnnualSavings() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculate_ROIWithZeroCost(t *testing.T) {
	c := NewCalculator()

	m := c.Calculate(Input{
		AnnualHoursSaved: 100,
		HourlyCost:       500,
		// no implementation or maintenance cost at all
	})

	if m.ROIPercent != 0 {
		t.Errorf("ROI with zero total cost = %v, want 0", m.ROIPercent)
	}
	if m.TotalLifetimeCost != 0 {
		t.Errorf("TotalLifetimeCost = %v, want 0", m.TotalLifetimeCost)
	}
}

func TestCalculate_PaybackSentinel(t *testing.T) {
	c := NewCalculator()

	// Maintenance eats the whole saving, so it never pays back.
	m := c.Calculate(Input{
		AnnualHoursSaved:      10,
		HourlyCost:            100,
		ImplementationCost:    50000,
		AnnualMaintenanceCost: 500000,
		LifetimeYears:         5,
	})

	if m.PaybackMonths != 999 {
		t.Errorf("PaybackMonths = %v, want sentinel 999", m.PaybackMonths)
	}
	if m.PaybackMonths < 0 || math.IsInf(m.PaybackMonths, 0) {
		t.Errorf("PaybackMonths must never be negative or infinite, got %v", m.PaybackMonths)
	}
}

func TestCalculate_FullPicture(t *testing.T) {
	c := NewCalculator()

	m := c.Calculate(Input{
		AnnualHoursSaved:      1000,
		HourlyCost:            600,
		ImplementationCost:    200000,
		AnnualMaintenanceCost: 20000,
		AnnualLicenseCost:     0,
		LifetimeYears:         5,
	})

	// annual savings = round(1000*600*1.141) - 20000 = 664600
	if m.RealisticAnnualSavings != 664600 {
		t.Fatalf("RealisticAnnualSavings = %v, want 664600", m.RealisticAnnualSavings)
	}

	wantSavings := 664600.0 * 5
	if m.TotalLifetimeSavings != wantSavings {
		t.Errorf("TotalLifetimeSavings = %v, want %v", m.TotalLifetimeSavings, wantSavings)
	}

	wantCost := 200000.0 + 20000*5
	if m.TotalLifetimeCost != wantCost {
		t.Errorf("TotalLifetimeCost = %v, want %v", m.TotalLifetimeCost, wantCost)
	}

	wantROI := (wantSavings - wantCost) / wantCost * 100
	if math.Abs(m.ROIPercent-wantROI) > 1e-9 {
		t.Errorf("ROIPercent = %v, want %v", m.ROIPercent, wantROI)
	}

	// monthly net = 664600/12 - 20000/12
	wantPayback := 200000 / (664600.0/12 - 20000.0/12)
	if math.Abs(m.PaybackMonths-wantPayback) > 1e-9 {
		t.Errorf("PaybackMonths = %v, want %v", m.PaybackMonths, wantPayback)
	}

	// NPV: discount (664600-20000) per year at 8%, minus implementation cost
	wantNPV := -200000.0
	for y := 1; y <= 5; y++ {
		wantNPV += 644600 / math.Pow(1.08, float64(y))
	}
	if math.Abs(m.NPV-wantNPV) > 1e-6 {
		t.Errorf("NPV = %v, want %v", m.NPV, wantNPV)
	}
}

func TestCalculate_DefaultLifetime(t *testing.T) {
	c := NewCalculator()

	m := c.Calculate(Input{
		AnnualHoursSaved: 100,
		HourlyCost:       100,
	})

	if m.LifetimeYears != 5 {
		t.Errorf("LifetimeYears defaulted to %d, want 5", m.LifetimeYears)
	}
}

package processes

import (
	"encoding/json"
	"testing"
)

func TestFlexFloat_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want float64
	}{
		{"plain number", `42.5`, 42.5},
		{"integer number", `120`, 120},
		{"numeric string", `"17.25"`, 17.25},
		{"numeric string with spaces", `" 300 "`, 300},
		{"negative", `-5.5`, -5.5},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"garbage string", `"four hundred"`, 0},
		{"zero", `0`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexFloat
			if err := json.Unmarshal([]byte(tt.json), &f); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.json, err)
			}
			if float64(f) != tt.want {
				t.Errorf("FlexFloat(%s) = %v, want %v", tt.json, float64(f), tt.want)
			}
		})
	}
}

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want int
	}{
		{"plain int", `150`, 150},
		{"float rounds half up", `2.5`, 3},
		{"float rounds down", `2.4`, 2},
		{"numeric string", `"45"`, 45},
		{"float string", `"12.7"`, 13},
		{"null", `null`, 0},
		{"garbage", `"a few"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var i FlexInt
			if err := json.Unmarshal([]byte(tt.json), &i); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.json, err)
			}
			if int(i) != tt.want {
				t.Errorf("FlexInt(%s) = %d, want %d", tt.json, int(i), tt.want)
			}
		})
	}
}

func TestProcessInput_SloppyPayloadDecodes(t *testing.T) {
	payload := `{
		"name": "Invoice matching",
		"owner": "Finance Ops",
		"department": "Finance",
		"description": "Match supplier invoices against purchase orders",
		"monthly_volume": "250",
		"processing_minutes": 12.6,
		"error_rate": "not tracked",
		"hourly_cost": "550",
		"org_impact": null,
		"risk_factors": ["High security access"]
	}`

	var in ProcessInput
	if err := json.Unmarshal([]byte(payload), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if int(in.MonthlyVolume) != 250 {
		t.Errorf("MonthlyVolume = %d, want 250", in.MonthlyVolume)
	}
	if int(in.ProcessingMinutes) != 13 {
		t.Errorf("ProcessingMinutes = %d, want 13", in.ProcessingMinutes)
	}
	if float64(in.ErrorRatePercent) != 0 {
		t.Errorf("ErrorRatePercent = %v, want 0 for unparseable input", in.ErrorRatePercent)
	}
	if float64(in.HourlyCost) != 550 {
		t.Errorf("HourlyCost = %v, want 550", in.HourlyCost)
	}
	if int(in.OrgImpact) != 0 {
		t.Errorf("OrgImpact = %d, want 0 (filled with the default later)", in.OrgImpact)
	}
}

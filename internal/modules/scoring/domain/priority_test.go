package domain

import "testing"

func TestPriorityFromScore_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  PriorityCategory
	}{
		{"Top of scale", 10, PriorityHigh},
		{"Exactly at high threshold", 6.6, PriorityHigh},
		{"Fraction below high threshold", 6.59999, PriorityMedium},
		{"Exactly at medium threshold", 4.0, PriorityMedium},
		{"Fraction below medium threshold", 3.9999, PriorityLow},
		{"Exactly at low threshold", 1.0, PriorityLow},
		{"Fraction below low threshold", 0.9999, PriorityNotApplicable},
		{"Zero", 0, PriorityNotApplicable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PriorityFromScore(tt.score); got != tt.want {
				t.Errorf("PriorityFromScore(%v) = %s, want %s", tt.score, got, tt.want)
			}
		})
	}
}

func TestFilterFactors(t *testing.T) {
	risk := FilterRiskFactors([]string{
		"High organizational resistance",
		"  Critical system dependencies  ", // tolerates padding
		"Made-up factor",
		"",
	})
	if len(risk) != 2 {
		t.Errorf("FilterRiskFactors kept %d entries, want 2: %v", len(risk), risk)
	}

	bonus := FilterBonusFactors([]string{"Synergy effects", "High security access"})
	if len(bonus) != 1 {
		t.Errorf("FilterBonusFactors kept %d entries, want 1: %v", len(bonus), bonus)
	}
}

func TestAPIAccessFromString(t *testing.T) {
	tests := []struct {
		value string
		want  APIAccess
	}{
		{"Yes", APIAccessYes},
		{"yes", APIAccessYes},
		{" NO ", APIAccessNo},
		{"Unknown", APIAccessUnknown},
		{"", APIAccessUnknown},
		{"maybe", APIAccessUnknown},
	}

	for _, tt := range tests {
		if got := APIAccessFromString(tt.value); got != tt.want {
			t.Errorf("APIAccessFromString(%q) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

package advisory

import (
	"strings"
	"testing"
	"time"
)

func TestRecommendations(t *testing.T) {
	a := NewAdvisor()

	tests := []struct {
		name       string
		volume     int
		formats    string
		difficulty IntegrationDifficulty
		wantCount  int
		wantFirst  string
	}{
		{
			name:      "High volume always leads",
			volume:    100,
			wantCount: 1,
			wantFirst: "High volume",
		},
		{
			name:      "Low volume below the tier",
			volume:    99,
			wantCount: 1,
			wantFirst: "Low volume",
		},
		{
			name:      "API beats PDF in the format match",
			volume:    10,
			formats:   "PDF, API",
			wantCount: 2,
			wantFirst: "Low volume",
		},
		{
			name:       "Full rule set truncates to three",
			volume:     500,
			formats:    "pdf",
			difficulty: IntegrationLegacy,
			wantCount:  3,
			wantFirst:  "High volume",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := a.Recommendations(tt.volume, tt.formats, tt.difficulty)
			if len(recs) != tt.wantCount {
				t.Fatalf("got %d recommendations %v, want %d", len(recs), recs, tt.wantCount)
			}
			if !strings.HasPrefix(recs[0], tt.wantFirst) {
				t.Errorf("first recommendation = %q, want prefix %q", recs[0], tt.wantFirst)
			}
		})
	}
}

func TestRecommendations_NeverMoreThanThree(t *testing.T) {
	a := NewAdvisor()

	recs := a.Recommendations(1000, "pdf, excel, web, api", IntegrationLegacy)
	if len(recs) > 3 {
		t.Errorf("got %d recommendations, cap is 3: %v", len(recs), recs)
	}
}

func TestAutomationComplexity(t *testing.T) {
	a := NewAdvisor()

	tests := []struct {
		name       string
		technical  int
		difficulty IntegrationDifficulty
		impact     ChangeImpact
		want       int
	}{
		{"all minimal", 1, IntegrationNone, ImpactMinimal, 1},
		{"all maximal", 5, IntegrationLegacy, ImpactTransformative, 5},
		{"middle of the road", 3, IntegrationModerate, ImpactModerate, 3},
		{"rounds the mean", 2, IntegrationComplex, ImpactMinimal, 2}, // (2+4+1)/3 = 2.33
		{"rounds up", 3, IntegrationComplex, ImpactSignificant, 3},  // (3+4+3)/3 = 3.33
		{"unknown difficulty defaults to 3", 3, "whatever", ImpactModerate, 3},
		{"unknown impact defaults to 2", 3, IntegrationModerate, "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.AutomationComplexity(tt.technical, tt.difficulty, tt.impact)
			if got != tt.want {
				t.Errorf("AutomationComplexity(%d, %q, %q) = %d, want %d",
					tt.technical, tt.difficulty, tt.impact, got, tt.want)
			}
		})
	}
}

func TestSeasonalBoost(t *testing.T) {
	a := NewAdvisor()

	at := func(month time.Month) time.Time {
		return time.Date(2026, month, 15, 12, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name    string
		pattern SeasonalPattern
		month   time.Month
		want    int
	}{
		{"year end peak in November", SeasonYearEnd, time.November, 2},
		{"year end peak in December", SeasonYearEnd, time.December, 2},
		{"year end tail in January", SeasonYearEnd, time.January, 1},
		{"year end off season", SeasonYearEnd, time.May, 0},
		{"quarter end in March", SeasonQuarterEnd, time.March, 1},
		{"quarter end in June", SeasonQuarterEnd, time.June, 1},
		{"quarter end off month", SeasonQuarterEnd, time.April, 0},
		{"summer in July", SeasonSummer, time.July, 1},
		{"summer in winter", SeasonSummer, time.December, 0},
		{"no pattern", SeasonNone, time.December, 0},
		{"unknown pattern", "lunar", time.December, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.SeasonalBoost(tt.pattern, at(tt.month))
			if got != tt.want {
				t.Errorf("SeasonalBoost(%q, %s) = %d, want %d", tt.pattern, tt.month, got, tt.want)
			}
		})
	}
}

func TestCriticalityScore(t *testing.T) {
	a := NewAdvisor()

	tests := []struct {
		tier Criticality
		want int
	}{
		{CriticalityLow, 1},
		{CriticalityStandard, 2},
		{CriticalityImportant, 3},
		{CriticalityHigh, 4},
		{CriticalityMission, 5},
		{"", 3},
		{"unheard_of", 3},
	}

	for _, tt := range tests {
		if got := a.CriticalityScore(tt.tier); got != tt.want {
			t.Errorf("CriticalityScore(%q) = %d, want %d", tt.tier, got, tt.want)
		}
	}
}

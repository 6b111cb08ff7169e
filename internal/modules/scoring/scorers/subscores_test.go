package scorers

import (
	"testing"

	"github.com/eivindh/rpa-radar/internal/modules/scoring/domain"
)

func TestTimeSavingsScore(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    int
	}{
		{"Two hours or more", 120, 5},
		{"Just below two hours", 119, 4},
		{"One hour", 60, 4},
		{"Half hour", 30, 3},
		{"Ten minutes", 10, 2},
		{"Trivial process", 5, 1},
		{"Zero minutes", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeSavingsScore(tt.minutes); got != tt.want {
				t.Errorf("TimeSavingsScore(%d) = %d, want %d", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestTimeSavingsScore_Monotonic(t *testing.T) {
	prev := 0
	for minutes := 0; minutes <= 240; minutes++ {
		got := TimeSavingsScore(minutes)
		if got < prev {
			t.Fatalf("score dropped from %d to %d at %d minutes", prev, got, minutes)
		}
		prev = got
	}
}

func TestVolumeScore(t *testing.T) {
	tests := []struct {
		name   string
		volume int
		want   int
	}{
		{"Very high volume", 1000, 5},
		{"High volume", 500, 4},
		{"Medium volume", 200, 3},
		{"Low volume", 50, 2},
		{"Minimal volume", 49, 1},
		{"Zero volume", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VolumeScore(tt.volume); got != tt.want {
				t.Errorf("VolumeScore(%d) = %d, want %d", tt.volume, got, tt.want)
			}
		})
	}
}

func TestVolumeScore_Monotonic(t *testing.T) {
	prev := 0
	for volume := 0; volume <= 2000; volume += 10 {
		got := VolumeScore(volume)
		if got < prev {
			t.Fatalf("score dropped from %d to %d at volume %d", prev, got, volume)
		}
		prev = got
	}
}

func TestQualityImprovementScore(t *testing.T) {
	tests := []struct {
		name string
		in   SubScoreInput
		want int
	}{
		{
			name: "Long frequent process already at cap, no change bonuses",
			in: SubScoreInput{
				ProcessingMinutes: 120,
				MonthlyVolume:     1000,
				TrainingNeed:      domain.TrainingExtensive,
				ChangeMagnitude:   domain.ChangeMajor,
				Resistance:        domain.ResistanceHigh,
			},
			want: 5,
		},
		{
			name: "Mid tier with all three change bonuses",
			in: SubScoreInput{
				ProcessingMinutes: 0,
				MonthlyVolume:     0,
				TrainingNeed:      domain.TrainingBrief,
				ChangeMagnitude:   domain.ChangeMinor,
				Resistance:        domain.ResistanceLow,
			},
			want: 4, // base 1 + 3 bonuses
		},
		{
			name: "Long solo process hits the 90 minute tier",
			in:   SubScoreInput{ProcessingMinutes: 90, MonthlyVolume: 1},
			want: 4,
		},
		{
			name: "Bonus cannot push past the cap",
			in: SubScoreInput{
				ProcessingMinutes: 60,
				MonthlyVolume:     100,
				TrainingNeed:      domain.TrainingStructured,
				ChangeMagnitude:   domain.ChangeMinor,
				Resistance:        domain.ResistanceLow,
			},
			want: 5,
		},
		{
			name: "Small new process",
			in:   SubScoreInput{ProcessingMinutes: 2, MonthlyVolume: 3},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QualityImprovementScore(tt.in); got != tt.want {
				t.Errorf("QualityImprovementScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTechnicalComplexityScore(t *testing.T) {
	tests := []struct {
		name    string
		formats string
		want    int
	}{
		{"Empty field defaults to medium", "", 3},
		{"Whitespace only defaults to medium", "   ", 3},
		{"API ranks highest", "REST API", 5},
		{"API wins over other keywords", "API, Excel, PDF", 5},
		{"XML", "xml exports", 4},
		{"JSON", "json feed", 4},
		{"PDF", "PDF attachments", 3},
		{"Word documents", "Word templates", 3},
		{"PDF rule fires before the spreadsheet rule", "Excel, PDF", 3},
		{"Spreadsheets", "Excel workbooks", 4},
		{"CSV", "csv dumps", 4},
		{"Unknown formats", "paper forms", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TechnicalComplexityScore(tt.formats); got != tt.want {
				t.Errorf("TechnicalComplexityScore(%q) = %d, want %d", tt.formats, got, tt.want)
			}
		})
	}
}

func TestDataComplexityScore(t *testing.T) {
	tests := []struct {
		name      string
		sources   string
		formats   string
		apiAccess domain.APIAccess
		want      int
	}{
		{"Nothing declared", "", "", domain.APIAccessUnknown, 1},
		{"Whitespace-only lists count as empty", "  ,  ", " , ", domain.APIAccessNo, 1},
		{"Single source single format", "ERP", "xlsx", domain.APIAccessNo, 1},
		{"Three sources", "ERP, CRM, mail", "", domain.APIAccessNo, 3},
		{"Sources and formats and API", "ERP, CRM, mail", "xlsx, pdf", domain.APIAccessYes, 5}, // 1+2+0.5+1 = 4.5, rounds up
		{"Capped at five", "a,b,c,d,e,f,g", "x,y,z", domain.APIAccessYes, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DataComplexityScore(tt.sources, tt.formats, tt.apiAccess)
			if got != tt.want {
				t.Errorf("DataComplexityScore(%q, %q, %s) = %d, want %d",
					tt.sources, tt.formats, tt.apiAccess, got, tt.want)
			}
		})
	}
}

func TestRuleStabilityScore(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		volume  int
		want    int
	}{
		{"Long and frequent", 60, 100, 5},
		{"Medium joint tier", 30, 50, 4},
		{"Either-or tier by minutes", 15, 0, 3},
		{"Either-or tier by volume", 0, 20, 3},
		{"Low everything", 5, 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RuleStabilityScore(tt.minutes, tt.volume); got != tt.want {
				t.Errorf("RuleStabilityScore(%d, %d) = %d, want %d",
					tt.minutes, tt.volume, got, tt.want)
			}
		})
	}
}

// Every sub-score must land in [1,5] across a wide input sweep.
func TestSubScores_AlwaysInRange(t *testing.T) {
	scorer := NewSubScorer()

	formats := []string{"", "api", "xml, pdf, csv", "paper, fax", "a,b,c,d,e,f,g,h"}
	sources := []string{"", "one", "a, b, c, d, e, f"}

	for _, minutes := range []int{0, 4, 15, 31, 59, 90, 120, 10000} {
		for _, volume := range []int{0, 9, 20, 55, 199, 500, 1000, 99999} {
			for _, f := range formats {
				for _, src := range sources {
					sub := scorer.Calculate(SubScoreInput{
						ProcessingMinutes: minutes,
						MonthlyVolume:     volume,
						FileFormats:       f,
						DataSources:       src,
						APIAccess:         domain.APIAccessYes,
						TrainingNeed:      domain.TrainingBrief,
						ChangeMagnitude:   domain.ChangeMinor,
						Resistance:        domain.ResistanceLow,
					})

					for name, score := range map[string]int{
						"time_savings":         sub.TimeSavings,
						"volume":               sub.Volume,
						"quality_improvement":  sub.QualityImprovement,
						"technical_complexity": sub.TechnicalComplexity,
						"data_complexity":      sub.DataComplexity,
						"rule_stability":       sub.RuleStability,
					} {
						if score < 1 || score > 5 {
							t.Fatalf("%s = %d out of range for minutes=%d volume=%d formats=%q sources=%q",
								name, score, minutes, volume, f, src)
						}
					}
				}
			}
		}
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  int
	}{
		{"Empty", "", 0},
		{"Whitespace only", "   ", 0},
		{"Dangling commas", ", a, , b,", 2},
		{"Normal list", "ERP, CRM, mail", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(SplitList(tt.field)); got != tt.want {
				t.Errorf("len(SplitList(%q)) = %d, want %d", tt.field, got, tt.want)
			}
		})
	}
}

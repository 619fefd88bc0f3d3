package skills

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestChartLabels(t *testing.T) {
	tests := []struct {
		lang      string
		wantFirst string
		wantLast  string
		wantLabel string
	}{
		{"en", "XAI", "Frontend", "Comfort level (%)"},
		{"ja", "XAI", "フロントエンド", "習熟度 (%)"},
		{"", "XAI", "フロントエンド", "習熟度 (%)"},
		{"fr", "XAI", "フロントエンド", "習熟度 (%)"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			cfg := Chart(tt.lang)
			got := cfg.Data.Labels
			if len(got) != len(Levels) {
				t.Fatalf("got %d labels, want %d", len(got), len(Levels))
			}
			if got[0] != tt.wantFirst || got[len(got)-1] != tt.wantLast {
				t.Errorf("labels = %v", got)
			}
			if cfg.Data.Datasets[0].Label != tt.wantLabel {
				t.Errorf("dataset label = %q, want %q", cfg.Data.Datasets[0].Label, tt.wantLabel)
			}
		})
	}
}

func TestChartDoesNotShareLevels(t *testing.T) {
	cfg := Chart("en")
	cfg.Data.Datasets[0].Data[0] = 0
	if Levels[0] != 90 {
		t.Fatal("mutating a chart changed the shared levels")
	}
}

func TestChartJSON(t *testing.T) {
	b, err := json.Marshal(Chart("en"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"type":"radar"`, `"suggestedMin":40`, `"suggestedMax":100`, `"display":false`} {
		if !strings.Contains(string(b), want) {
			t.Errorf("chart JSON missing %s", want)
		}
	}
}

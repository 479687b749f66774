package engine

import "testing"

func TestClassifyRecommendationBands(t *testing.T) {
	bands := RecommendationBands()
	cases := []struct {
		utilization float64
		expected    string
	}{
		{100, "OPTIMAL"},
		{85, "OPTIMAL"},
		{84, "GOOD"},
		{70, "GOOD"},
		{69, "OVERPOWERED"},
		{50, "OVERPOWERED"},
		{49, "EXCESSIVE"},
		{10, "EXCESSIVE"},
	}
	for _, tc := range cases {
		got := Classify(tc.utilization, bands)
		if got.Label != tc.expected {
			t.Fatalf("utilization %f: expected %s, got %s", tc.utilization, tc.expected, got.Label)
		}
		if got.Description == "" {
			t.Fatalf("band %s must carry a description", got.Label)
		}
	}
}

func TestClassifyMinimumPowerBands(t *testing.T) {
	bands := MinimumPowerBands()
	cases := []struct {
		utilization float64
		expected    string
	}{
		{130, "INSUFFICIENT"},
		{101, "INSUFFICIENT"},
		{100, "OPTIMAL"},
		{80, "OPTIMAL"},
		{79, "OVERPOWERED"},
		{20, "OVERPOWERED"},
	}
	for _, tc := range cases {
		got := Classify(tc.utilization, bands)
		if got.Label != tc.expected {
			t.Fatalf("utilization %f: expected %s, got %s", tc.utilization, tc.expected, got.Label)
		}
	}
}

func TestClassifySharedAcrossSchemes(t *testing.T) {
	// Same classifier, different boundaries: the two schemes disagree on
	// purpose at low utilization.
	rec := Classify(40, RecommendationBands())
	min := Classify(40, MinimumPowerBands())
	if rec.Label != "EXCESSIVE" || min.Label != "OVERPOWERED" {
		t.Fatalf("expected EXCESSIVE/OVERPOWERED, got %s/%s", rec.Label, min.Label)
	}
}

package session

import "testing"

func TestBandFor(t *testing.T) {
	cases := []struct {
		score int
		band  Band
		label string
	}{
		{100, BandHigh, "Excellent Match"},
		{75, BandHigh, "Excellent Match"},
		{74, BandMedium, "Good Match"},
		{50, BandMedium, "Good Match"},
		{49, BandLow, "Needs Improvement"},
		{0, BandLow, "Needs Improvement"},
		{-5, BandLow, "Needs Improvement"},
		{140, BandHigh, "Excellent Match"},
	}

	for _, tc := range cases {
		got := BandFor(tc.score)
		if got != tc.band {
			t.Errorf("BandFor(%d) = %q, want %q", tc.score, got, tc.band)
		}
		if got.Label() != tc.label {
			t.Errorf("BandFor(%d).Label() = %q, want %q", tc.score, got.Label(), tc.label)
		}
	}
}

func TestBandColor(t *testing.T) {
	if BandHigh.Color() != "green" || BandMedium.Color() != "yellow" || BandLow.Color() != "red" {
		t.Fatalf("unexpected palette: %s/%s/%s", BandHigh.Color(), BandMedium.Color(), BandLow.Color())
	}
}

func TestClampPercent(t *testing.T) {
	for in, want := range map[int]int{-10: 0, 0: 0, 42: 42, 100: 100, 180: 100} {
		if got := ClampPercent(in); got != want {
			t.Errorf("ClampPercent(%d) = %d, want %d", in, got, want)
		}
	}
}

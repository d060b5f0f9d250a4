package tier

import (
	"testing"

	"github.com/vovakirdan/trench-runner/internal/core"
)

func TestFromBalance(t *testing.T) {
	tests := []struct {
		balance int64
		want    Tier
	}{
		{-5, None},
		{0, None},
		{999, None},
		{1_000, Bronze},
		{9_999, Bronze},
		{10_000, Silver},
		{100_000, Gold},
		{999_999, Gold},
		{1_000_000, Diamond},
		{50_000_000, Diamond},
	}

	for _, tc := range tests {
		if got := FromBalance(tc.balance); got != tc.want {
			t.Errorf("FromBalance(%d) = %v, expected %v", tc.balance, got, tc.want)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for tr := None; tr <= Diamond; tr++ {
		got, err := Parse(tr.String())
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tr.String(), err)
		}
		if got != tr {
			t.Errorf("Parse(%q) = %v, expected %v", tr.String(), got, tr)
		}
	}
	if got, err := Parse("GOLD"); err != nil || got != Gold {
		t.Errorf("Parse(GOLD) = %v, %v", got, err)
	}
	if _, err := Parse("platinum"); err == nil {
		t.Error("Parse(platinum) should fail")
	}
}

func TestLabelAndTint(t *testing.T) {
	if None.Label() != "" {
		t.Errorf("None.Label() = %q, expected empty", None.Label())
	}
	if Diamond.Label() != "Diamond" {
		t.Errorf("Diamond.Label() = %q", Diamond.Label())
	}
	if Gold.Tint() != core.ColorGold {
		t.Errorf("Gold.Tint() = %v, expected ColorGold", Gold.Tint())
	}
	if None.Tint() != core.ColorNeon {
		t.Errorf("None.Tint() = %v, expected ColorNeon", None.Tint())
	}
}

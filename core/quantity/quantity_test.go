package quantity

import (
	"testing"

	"github.com/shopspring/decimal"

	"prepstock/core/types"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name           string
		actual, needed string
		want           string
	}{
		{"half", "5", "10", "50"},
		{"capped at hundred", "30", "10", "100"},
		{"zero need is satisfied", "0", "0", "100"},
		{"negative need is satisfied", "5", "-1", "100"},
		{"zero actual", "0", "8", "0"},
		{"thirds stay deterministic", "1", "3", "33.33333333333333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percent(decimal.RequireFromString(tt.actual), decimal.RequireFromString(tt.needed))
			if got.String() != tt.want {
				t.Errorf("Percent(%s, %s) = %s, want %s", tt.actual, tt.needed, got, tt.want)
			}
		})
	}
}

func TestCeilForUnit(t *testing.T) {
	q := decimal.RequireFromString("2.3")

	if got := CeilForUnit(q, types.UnitCan); got.String() != "3" {
		t.Errorf("discrete unit: got %s, want 3", got)
	}
	if got := CeilForUnit(q, types.UnitLiter); got.String() != "2.3" {
		t.Errorf("continuous unit: got %s, want 2.3", got)
	}
}

func TestMissing(t *testing.T) {
	if got := Missing(decimal.NewFromInt(4), decimal.NewFromInt(9)); got.String() != "5" {
		t.Errorf("Missing = %s, want 5", got)
	}
	if got := Missing(decimal.NewFromInt(9), decimal.NewFromInt(4)); !got.IsZero() {
		t.Errorf("surplus must clamp to zero, got %s", got)
	}
}

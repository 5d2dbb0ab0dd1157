package model

import (
	"encoding/json"
	"math"
	"testing"

	"task-planner.com/task-planner/internal/constants"
)

func TestToHours(t *testing.T) {
	cases := []struct {
		name string
		d    Duration
		want float64
	}{
		{"minutes", UnitDuration{Value: 90, Unit: constants.UnitMinutes}, 1.5},
		{"hours", UnitDuration{Value: 3, Unit: constants.UnitHours}, 3},
		{"days", UnitDuration{Value: 2, Unit: constants.UnitDays}, 48},
		{"weeks", UnitDuration{Value: 1, Unit: constants.UnitWeeks}, 168},
		{"months", UnitDuration{Value: 2, Unit: constants.UnitMonths}, 1440},
		{"unknown unit", UnitDuration{Value: 2, Unit: "fortnights"}, 48},
		{"missing unit", UnitDuration{Value: 1.5}, 36},
		{"legacy", LegacyDuration(3), 72},
		{"nil", nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToHours(tc.d); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("ToHours(%v) = %v, want %v", tc.d, got, tc.want)
			}
		})
	}
}

func TestDisplayString(t *testing.T) {
	cases := []struct {
		d    Duration
		want string
	}{
		{UnitDuration{Value: 2, Unit: constants.UnitDays}, "2 days"},
		{UnitDuration{Value: 1.5, Unit: constants.UnitHours}, "1.5 hours"},
		{UnitDuration{Value: 1.5}, "1.5 days"},
		{UnitDuration{Value: 2, Unit: "fortnights"}, "2 fortnights"},
		{LegacyDuration(4), "4 days"},
		{nil, ""},
	}

	for _, tc := range cases {
		if got := DisplayString(tc.d); got != tc.want {
			t.Errorf("DisplayString(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestEstimate_JSON(t *testing.T) {
	var structured Estimate
	if err := json.Unmarshal([]byte(`{"value": 3, "unit": "weeks"}`), &structured); err != nil {
		t.Fatalf("unmarshal structured: %v", err)
	}
	if structured.String() != "3 weeks" || structured.Hours() != 504 {
		t.Errorf("unexpected structured estimate %v (%v hours)", structured, structured.Hours())
	}

	var legacy Estimate
	if err := json.Unmarshal([]byte(`5`), &legacy); err != nil {
		t.Fatalf("unmarshal legacy: %v", err)
	}
	if _, ok := legacy.Duration.(LegacyDuration); !ok {
		t.Fatalf("expected LegacyDuration, got %T", legacy.Duration)
	}
	if legacy.String() != "5 days" {
		t.Errorf("unexpected legacy display %q", legacy.String())
	}

	out, err := json.Marshal(legacy)
	if err != nil {
		t.Fatalf("marshal legacy: %v", err)
	}
	if string(out) != "5" {
		t.Errorf("legacy estimate should stay a bare number, got %s", out)
	}

	out, err = json.Marshal(NewEstimate(2, constants.UnitHours))
	if err != nil {
		t.Fatalf("marshal structured: %v", err)
	}
	if string(out) != `{"value":2,"unit":"hours"}` {
		t.Errorf("unexpected structured JSON %s", out)
	}
}

func TestEstimate_MissingUnitReadsAsDays(t *testing.T) {
	var e Estimate
	if err := json.Unmarshal([]byte(`{"value": 2}`), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Hours() != 48 {
		t.Errorf("expected 48 hours, got %v", e.Hours())
	}
	if e.String() != "2 days" {
		t.Errorf("expected \"2 days\", got %q", e.String())
	}
}

func TestEstimate_RejectsOtherShapes(t *testing.T) {
	var e Estimate
	for _, raw := range []string{`"two days"`, `[1, 2]`, `true`} {
		if err := json.Unmarshal([]byte(raw), &e); err == nil {
			t.Errorf("expected error decoding %s", raw)
		}
	}
}

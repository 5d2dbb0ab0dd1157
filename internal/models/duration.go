package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"task-planner.com/task-planner/internal/constants"
)

// Duration is an estimated effort. It is either a LegacyDuration (a bare
// number of days written by older clients) or a UnitDuration.
type Duration interface {
	duration()
}

// LegacyDuration is a unitless estimate, always interpreted as days.
type LegacyDuration float64

// UnitDuration is an estimate with an explicit unit.
type UnitDuration struct {
	Value float64                `json:"value"`
	Unit  constants.DurationUnit `json:"unit"`
}

func (LegacyDuration) duration() {}
func (UnitDuration) duration() {}

var hoursPerUnit = map[constants.DurationUnit]float64{
	constants.UnitMinutes: 1.0 / 60,
	constants.UnitHours:   1,
	constants.UnitDays:    24,
	constants.UnitWeeks:   168,
	constants.UnitMonths:  720,
}

// ToHours converts d to hours. Unknown units and legacy values count as days.
func ToHours(d Duration) float64 {
	switch v := d.(type) {
	case UnitDuration:
		if ratio, ok := hoursPerUnit[v.Unit]; ok {
			return v.Value * ratio
		}
		return v.Value * 24
	case LegacyDuration:
		return float64(v) * 24
	default:
		return 0
	}
}

// DisplayString renders d as "{value} {unit}". A value without a unit is
// shown in days, the same way ToHours counts it.
func DisplayString(d Duration) string {
	switch v := d.(type) {
	case UnitDuration:
		if v.Unit == "" {
			return fmt.Sprintf("%s days", formatValue(v.Value))
		}
		return fmt.Sprintf("%s %s", formatValue(v.Value), v.Unit)
	case LegacyDuration:
		return fmt.Sprintf("%s days", formatValue(float64(v)))
	default:
		return ""
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Estimate carries a Duration through JSON and the tasks table.
type Estimate struct {
	Duration
}

func NewEstimate(value float64, unit constants.DurationUnit) Estimate {
	return Estimate{Duration: UnitDuration{Value: value, Unit: unit}}
}

func (e Estimate) Hours() float64 {
	return ToHours(e.Duration)
}

func (e Estimate) String() string {
	return DisplayString(e.Duration)
}

func (e Estimate) MarshalJSON() ([]byte, error) {
	switch v := e.Duration.(type) {
	case UnitDuration:
		return json.Marshal(v)
	case LegacyDuration:
		return json.Marshal(float64(v))
	default:
		return []byte("null"), nil
	}
}

func (e *Estimate) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		e.Duration = nil
		return nil
	}

	switch trimmed[0] {
	case '{':
		var d UnitDuration
		if err := json.Unmarshal(trimmed, &d); err != nil {
			return fmt.Errorf("decode duration: %w", err)
		}
		e.Duration = d
	default:
		var days float64
		if err := json.Unmarshal(trimmed, &days); err != nil {
			return fmt.Errorf("decode legacy duration: %w", err)
		}
		e.Duration = LegacyDuration(days)
	}

	return nil
}

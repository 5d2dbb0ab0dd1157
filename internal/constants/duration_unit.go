package constants

type DurationUnit string

const (
	UnitMinutes DurationUnit = "minutes"
	UnitHours   DurationUnit = "hours"
	UnitDays    DurationUnit = "days"
	UnitWeeks   DurationUnit = "weeks"
	UnitMonths  DurationUnit = "months"
)

func DurationUnits() []DurationUnit {
	return []DurationUnit{UnitMinutes, UnitHours, UnitDays, UnitWeeks, UnitMonths}
}

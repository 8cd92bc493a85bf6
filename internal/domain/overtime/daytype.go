package overtime

// DayType classifies a request date for pay-rate purposes. The
// classification itself happens in SQL against the holiday calendar when
// the request is created; this package only carries the result and its
// display metadata.
type DayType string

const (
	DayTypeWeekday       DayType = "weekday"
	DayTypeSaturday      DayType = "saturday"
	DayTypeSunday        DayType = "sunday"
	DayTypePublicHoliday DayType = "public_holiday"
)

type dayTypeMeta struct {
	label      string
	color      string
	multiplier float64
}

var dayTypes = map[DayType]dayTypeMeta{
	DayTypeWeekday:       {label: "Weekday", color: "blue", multiplier: 1.5},
	DayTypeSaturday:      {label: "Saturday", color: "amber", multiplier: 2.0},
	DayTypeSunday:        {label: "Sunday", color: "orange", multiplier: 2.0},
	DayTypePublicHoliday: {label: "Public Holiday", color: "red", multiplier: 3.0},
}

// meta returns display metadata, falling back to the weekday rendering for
// unrecognized values.
func (d DayType) meta() dayTypeMeta {
	if m, ok := dayTypes[d]; ok {
		return m
	}
	return dayTypes[DayTypeWeekday]
}

// Label returns the display label for the day type
func (d DayType) Label() string {
	return d.meta().label
}

// Color returns the display color token for the day type
func (d DayType) Color() string {
	return d.meta().color
}

// RateMultiplier returns the pay-rate multiplier applied to the base hourly
// rate for this day type.
func (d DayType) RateMultiplier() float64 {
	return d.meta().multiplier
}

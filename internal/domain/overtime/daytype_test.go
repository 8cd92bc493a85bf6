package overtime

import "testing"

func TestDayTypeMetadata(t *testing.T) {
	cases := []struct {
		dayType    DayType
		label      string
		color      string
		multiplier float64
	}{
		{DayTypeWeekday, "Weekday", "blue", 1.5},
		{DayTypeSaturday, "Saturday", "amber", 2.0},
		{DayTypeSunday, "Sunday", "orange", 2.0},
		{DayTypePublicHoliday, "Public Holiday", "red", 3.0},
	}

	for _, c := range cases {
		if got := c.dayType.Label(); got != c.label {
			t.Errorf("DayType(%q).Label() = %q, want %q", c.dayType, got, c.label)
		}
		if got := c.dayType.Color(); got != c.color {
			t.Errorf("DayType(%q).Color() = %q, want %q", c.dayType, got, c.color)
		}
		if got := c.dayType.RateMultiplier(); got != c.multiplier {
			t.Errorf("DayType(%q).RateMultiplier() = %v, want %v", c.dayType, got, c.multiplier)
		}
	}
}

func TestDayTypeUnknownFallsBackToWeekday(t *testing.T) {
	unknown := DayType("half_day")

	if got := unknown.Label(); got != "Weekday" {
		t.Errorf("Label() = %q, want %q", got, "Weekday")
	}
	if got := unknown.Color(); got != "blue" {
		t.Errorf("Color() = %q, want %q", got, "blue")
	}
	if got := unknown.RateMultiplier(); got != 1.5 {
		t.Errorf("RateMultiplier() = %v, want %v", got, 1.5)
	}
}

package employee

import "testing"

func TestHourlyRate(t *testing.T) {
	cases := []struct {
		name   string
		salary float64
		want   float64
	}{
		{"typical salary", 4160, 20},
		{"zero salary", 0, 0},
		{"minimum wage range", 1560, 7.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := Employee{MonthlySalary: c.salary}
			if got := e.HourlyRate(); got != c.want {
				t.Errorf("HourlyRate() = %v, want %v", got, c.want)
			}
		})
	}
}

package models

import (
	"fmt"
	"math"
)

// weeksPerMonth approximates the length of a month in weeks
const weeksPerMonth = 4.33

// FormatAge converts an age in weeks to a human-readable string such as
// "2 years, 3 months". Zero or unknown ages yield "Unknown".
func FormatAge(weeks float64) string {
	if math.IsNaN(weeks) || weeks == 0 {
		return "Unknown"
	}

	years := int(weeks / 52)
	remainingWeeks := int(weeks) % 52
	months := int(float64(remainingWeeks) / weeksPerMonth)

	switch {
	case years > 0 && months > 0:
		return fmt.Sprintf("%d %s, %d %s", years, plural(years, "year"), months, plural(months, "month"))
	case years > 0:
		return fmt.Sprintf("%d %s", years, plural(years, "year"))
	case months > 0:
		return fmt.Sprintf("%d %s", months, plural(months, "month"))
	default:
		return fmt.Sprintf("%d %s", int(weeks), plural(int(weeks), "week"))
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

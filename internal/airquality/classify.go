package airquality

import "math"

// Category is a discrete AQI severity tier. Rank runs 1 (Good) to
// 6 (Hazardous) and is derived, never stored.
type Category struct {
	Label        string `json:"label"`
	SeverityRank int    `json:"severity_rank"`
	Description  string `json:"description"`
}

// The six fixed severity tiers, in ascending order.
var (
	CategoryGood = Category{
		Label:        "Good",
		SeverityRank: 1,
		Description:  "Air quality is satisfactory and poses little or no risk.",
	}
	CategoryModerate = Category{
		Label:        "Moderate",
		SeverityRank: 2,
		Description:  "Acceptable air quality; a risk for unusually sensitive people.",
	}
	CategorySensitive = Category{
		Label:        "Unhealthy for Sensitive Groups",
		SeverityRank: 3,
		Description:  "Members of sensitive groups may experience health effects.",
	}
	CategoryUnhealthy = Category{
		Label:        "Unhealthy",
		SeverityRank: 4,
		Description:  "Everyone may begin to experience health effects.",
	}
	CategoryVeryUnhealthy = Category{
		Label:        "Very Unhealthy",
		SeverityRank: 5,
		Description:  "Health alert: everyone may experience more serious effects.",
	}
	CategoryHazardous = Category{
		Label:        "Hazardous",
		SeverityRank: 6,
		Description:  "Health warning of emergency conditions affecting everyone.",
	}
)

// Classify maps a non-negative AQI value to its severity category.
// Breakpoints are half-open intervals evaluated ascending, so boundary
// values (50, 100, ...) belong to the lower category. Values beyond any
// real-world maximum still classify as Hazardous.
func Classify(aqi float64) Category {
	switch {
	case aqi <= 50:
		return CategoryGood
	case aqi <= 100:
		return CategoryModerate
	case aqi <= 150:
		return CategorySensitive
	case aqi <= 200:
		return CategoryUnhealthy
	case aqi <= 300:
		return CategoryVeryUnhealthy
	default:
		return CategoryHazardous
	}
}

// NormalizedSeverity converts an AQI value to a 0-100 gauge-fill
// percentage, clamped at 100 for anything at or beyond AQI 300.
func NormalizedSeverity(aqi float64) float64 {
	return math.Min(100, aqi/3)
}

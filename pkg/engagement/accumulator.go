package engagement

import "math"

// scoreAccumulator is the shared running average over numeric answer values.
// Nil values are skipped, never counted. Used by the trend, heatmap and
// question ranking aggregations.
type scoreAccumulator struct {
	sum   float64
	count int
}

func (a *scoreAccumulator) Add(value float64) {
	a.sum += value
	a.count++
}

func (a *scoreAccumulator) AddIfPresent(value *float64) {
	if value == nil {
		return
	}
	a.Add(*value)
}

func (a *scoreAccumulator) Count() int {
	return a.count
}

// Average returns the mean rounded to two decimal places, 0 when nothing
// was accumulated.
func (a *scoreAccumulator) Average() float64 {
	if a.count == 0 {
		return 0
	}
	return roundToTwoDecimals(a.sum / float64(a.count))
}

func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// completionRate returns round(completed/total*100), 0 when total is 0.
func completionRate(total int64, completed int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

package analysis

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/damie/spotify-insights/internal/dataset"
)

// Alpha is the significance threshold for both hypothesis tests.
const Alpha = 0.05

// WeekendVsWeekday tests whether mean daily listening time differs
// between weekends and weekdays, using a two-sample pooled t-test
// over per-day minute totals. The statistic is weekend minus weekday,
// so a positive value means more weekend listening.
func WeekendVsWeekday(ds dataset.Dataset) TTestResult {
	daily := make(map[time.Time]float64)
	for _, e := range ds {
		daily[e.Date] += e.Minutes
	}

	var weekend, weekday []float64
	for date, minutes := range daily {
		switch date.Weekday() {
		case time.Saturday, time.Sunday:
			weekend = append(weekend, minutes)
		default:
			weekday = append(weekday, minutes)
		}
	}

	result := TTestResult{}
	if len(weekend) > 0 {
		result.WeekendMeanMinutes = round2(stat.Mean(weekend, nil))
	}
	if len(weekday) > 0 {
		result.WeekdayMeanMinutes = round2(stat.Mean(weekday, nil))
	}

	t, p, ok := twoSampleTTest(weekend, weekday)
	if !ok {
		result.Interpretation = "Not enough daily data to compare weekend and weekday listening."
		return result
	}

	result.Statistic = round4(t)
	result.PValue = round4(p)
	result.Significant = result.PValue < Alpha
	result.Valid = true

	direction := "weekdays"
	if result.WeekendMeanMinutes > result.WeekdayMeanMinutes {
		direction = "weekends"
	}
	if result.Significant {
		result.Interpretation = fmt.Sprintf(
			"You listen significantly more on %s (p=%.4f, alpha=%v). This difference is unlikely to be due to chance.",
			direction, result.PValue, Alpha)
	} else {
		result.Interpretation = fmt.Sprintf(
			"There is no statistically significant difference between your weekend and weekday listening (p=%.4f, alpha=%v).",
			result.PValue, Alpha)
	}
	return result
}

// twoSampleTTest runs a pooled-variance two-sample t-test of a
// against b. ok is false when either sample is empty, there are no
// degrees of freedom, or the pooled variance is zero.
func twoSampleTTest(a, b []float64) (t, p float64, ok bool) {
	n1, n2 := float64(len(a)), float64(len(b))
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, false
	}
	df := n1 + n2 - 2
	if df < 1 {
		return 0, 0, false
	}

	m1, m2 := stat.Mean(a, nil), stat.Mean(b, nil)
	v1, v2 := stat.Variance(a, nil), stat.Variance(b, nil)

	pooled := ((n1-1)*v1 + (n2-1)*v2) / df
	denom := math.Sqrt(pooled * (1/n1 + 1/n2))
	if denom == 0 {
		return 0, 0, false
	}

	t = (m1 - m2) / denom
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p = 2 * dist.CDF(-math.Abs(t))
	return t, p, true
}

// TimeOfDay buckets every event's hour into Morning, Afternoon,
// Evening, or Night, aggregates to per-date-per-period minute totals,
// and runs a one-way ANOVA across the buckets. Fewer than two buckets
// with more than one observation is a defined cannot-test outcome,
// not an error.
func TimeOfDay(ds dataset.Dataset) AnovaResult {
	type dayPeriod struct {
		date   time.Time
		period string
	}
	totals := make(map[dayPeriod]float64)
	for _, e := range ds {
		totals[dayPeriod{e.Date, assignPeriod(e.Hour)}] += e.Minutes
	}

	groups := make(map[string][]float64)
	for dp, minutes := range totals {
		groups[dp.period] = append(groups[dp.period], minutes)
	}

	result := AnovaResult{PeriodAvgs: make(map[string]float64)}
	for _, period := range PeriodOrder {
		if samples := groups[period]; len(samples) > 0 {
			result.PeriodAvgs[period] = round1(stat.Mean(samples, nil))
		}
	}

	// Dominant period by mean, first in bucket order on ties.
	bestMean := math.Inf(-1)
	for _, period := range PeriodOrder {
		if avg, present := result.PeriodAvgs[period]; present && avg > bestMean {
			bestMean = avg
			result.DominantPeriod = period
		}
	}

	var samples [][]float64
	for _, period := range PeriodOrder {
		if len(groups[period]) > 1 {
			samples = append(samples, groups[period])
		}
	}
	if len(samples) < 2 {
		result.Interpretation = "Not enough data across time-of-day periods to test for a pattern."
		return result
	}

	f, p, ok := oneWayANOVA(samples)
	if !ok {
		result.Interpretation = "Listening is too uniform across periods to test for a pattern."
		return result
	}

	result.Statistic = round4(f)
	result.PValue = round4(p)
	result.Significant = result.PValue < Alpha
	result.Valid = true

	if result.Significant {
		result.Interpretation = fmt.Sprintf(
			"You are most active during the %s, averaging %v minutes per day during that period. This pattern is statistically significant.",
			result.DominantPeriod, result.PeriodAvgs[result.DominantPeriod])
	} else {
		result.Interpretation = fmt.Sprintf(
			"You are most active during the %s, but the difference across periods is not statistically significant.",
			result.DominantPeriod)
	}
	return result
}

func assignPeriod(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return PeriodMorning
	case hour >= 12 && hour < 18:
		return PeriodAfternoon
	case hour >= 18 && hour < 22:
		return PeriodEvening
	}
	return PeriodNight
}

// oneWayANOVA computes the F statistic and p-value across the groups.
// ok is false when within-group variance is zero or degrees of
// freedom run out.
func oneWayANOVA(groups [][]float64) (f, p float64, ok bool) {
	k := len(groups)
	n := 0
	var grandSum float64
	for _, g := range groups {
		n += len(g)
		for _, v := range g {
			grandSum += v
		}
	}
	if k < 2 || n-k < 1 {
		return 0, 0, false
	}
	grandMean := grandSum / float64(n)

	var ssBetween, ssWithin float64
	for _, g := range groups {
		mean := stat.Mean(g, nil)
		ssBetween += float64(len(g)) * (mean - grandMean) * (mean - grandMean)
		for _, v := range g {
			ssWithin += (v - mean) * (v - mean)
		}
	}
	if ssWithin == 0 {
		return 0, 0, false
	}

	df1, df2 := float64(k-1), float64(n-k)
	f = (ssBetween / df1) / (ssWithin / df2)
	dist := distuv.F{D1: df1, D2: df2}
	p = 1 - dist.CDF(f)
	return f, p, true
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

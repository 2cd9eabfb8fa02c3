package analysis

import (
	"testing"
	"time"

	"github.com/damie/spotify-insights/internal/dataset"
)

// weekOfPlays builds one event per day over the given number of weeks
// starting on Monday 2024-01-01, with separate weekday and weekend
// minute levels. The jitter term keeps variances non-zero.
func weekOfPlays(t *testing.T, weeks int, weekdayMinutes, weekendMinutes float64) dataset.Dataset {
	t.Helper()
	var ds dataset.Dataset
	start := time.Date(2024, time.January, 1, 14, 0, 0, 0, time.UTC)
	for day := 0; day < weeks*7; day++ {
		ts := start.AddDate(0, 0, day)
		minutes := weekdayMinutes
		if ts.Weekday() == time.Saturday || ts.Weekday() == time.Sunday {
			minutes = weekendMinutes
		}
		minutes += float64(day%3) // jitter
		ds = append(ds, play(t, ts.Format(time.RFC3339), "Wizkid", "Essence", minutes))
	}
	return ds
}

func TestWeekendVsWeekdaySignificant(t *testing.T) {
	ds := weekOfPlays(t, 4, 10, 120)

	got := WeekendVsWeekday(ds)
	if !got.Valid {
		t.Fatalf("test should have run: %+v", got)
	}
	if got.PValue < 0 || got.PValue > 1 {
		t.Fatalf("p-value out of range: %v", got.PValue)
	}
	if !got.Significant {
		t.Fatalf("a 12x difference should be significant: %+v", got)
	}
	if got.Significant != (got.PValue < Alpha) {
		t.Fatalf("Significant should mirror the p-value: %+v", got)
	}
	if got.Statistic <= 0 {
		t.Fatalf("weekend-heavy data should give a positive statistic, got %v", got.Statistic)
	}
	if got.WeekendMeanMinutes <= got.WeekdayMeanMinutes {
		t.Fatalf("unexpected means: %+v", got)
	}
}

func TestWeekendVsWeekdayNotSignificant(t *testing.T) {
	ds := weekOfPlays(t, 4, 30, 30)

	got := WeekendVsWeekday(ds)
	if !got.Valid {
		t.Fatalf("test should have run: %+v", got)
	}
	if got.Significant {
		t.Fatalf("identical levels should not be significant: %+v", got)
	}
}

func TestWeekendVsWeekdayOneGroupEmpty(t *testing.T) {
	// Monday and Tuesday only, no weekend days.
	ds := dataset.Dataset{
		play(t, "2024-01-01T10:00:00Z", "Wizkid", "Essence", 10),
		play(t, "2024-01-02T10:00:00Z", "Wizkid", "Essence", 20),
	}

	got := WeekendVsWeekday(ds)
	if got.Valid {
		t.Fatalf("test should not run with an empty group: %+v", got)
	}
	if got.Interpretation == "" {
		t.Fatalf("cannot-test outcome should still be explained")
	}
}

func TestWeekendVsWeekdayZeroVariance(t *testing.T) {
	// One weekday and one weekend day leaves no degrees of freedom.
	ds := dataset.Dataset{
		play(t, "2024-01-01T10:00:00Z", "Wizkid", "Essence", 10),
		play(t, "2024-01-06T10:00:00Z", "Wizkid", "Essence", 10),
	}

	got := WeekendVsWeekday(ds)
	if got.Valid {
		t.Fatalf("test should not run without degrees of freedom: %+v", got)
	}
}

func TestTimeOfDaySignificant(t *testing.T) {
	var ds dataset.Dataset
	for day := 0; day < 14; day++ {
		date := time.Date(2024, time.January, 1+day, 0, 0, 0, 0, time.UTC)
		jitter := float64(day % 3)
		morning := date.Add(8 * time.Hour)
		evening := date.Add(20 * time.Hour)
		ds = append(ds, play(t, morning.Format(time.RFC3339), "Wizkid", "Essence", 5+jitter))
		ds = append(ds, play(t, evening.Format(time.RFC3339), "Burna Boy", "Last Last", 120+jitter))
	}

	got := TimeOfDay(ds)
	if !got.Valid {
		t.Fatalf("test should have run: %+v", got)
	}
	if got.DominantPeriod != PeriodEvening {
		t.Fatalf("expected Evening dominant, got %q", got.DominantPeriod)
	}
	if got.PValue < 0 || got.PValue > 1 {
		t.Fatalf("p-value out of range: %v", got.PValue)
	}
	if !got.Significant {
		t.Fatalf("a 24x difference should be significant: %+v", got)
	}
	if _, present := got.PeriodAvgs[PeriodAfternoon]; present {
		t.Fatalf("periods with no listening should be omitted: %+v", got.PeriodAvgs)
	}
}

func TestTimeOfDayTooFewGroups(t *testing.T) {
	ds := dataset.Dataset{
		play(t, "2024-01-01T08:00:00Z", "Wizkid", "Essence", 10),
		play(t, "2024-01-02T08:00:00Z", "Wizkid", "Essence", 12),
	}

	got := TimeOfDay(ds)
	if got.Valid {
		t.Fatalf("a single period should be a cannot-test outcome: %+v", got)
	}
	if got.DominantPeriod != PeriodMorning {
		t.Fatalf("dominant period should still be reported, got %q", got.DominantPeriod)
	}
	if got.Interpretation == "" {
		t.Fatalf("cannot-test outcome should still be explained")
	}
}

func TestAssignPeriod(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{6, PeriodMorning},
		{11, PeriodMorning},
		{12, PeriodAfternoon},
		{17, PeriodAfternoon},
		{18, PeriodEvening},
		{21, PeriodEvening},
		{22, PeriodNight},
		{3, PeriodNight},
		{0, PeriodNight},
	}
	for _, c := range cases {
		if got := assignPeriod(c.hour); got != c.want {
			t.Fatalf("assignPeriod(%d) = %q, want %q", c.hour, got, c.want)
		}
	}
}

package calendar

import "time"

// WeekStart returns the date of the most recent `first` weekday at or before
// d. Weeks run [WeekStart, WeekStart+6].
func WeekStart(d time.Time, first time.Weekday) time.Time {
	d = Midnight(d)
	back := (int(d.Weekday()) - int(first) + 7) % 7
	return d.AddDate(0, 0, -back)
}

// WeekWindow returns the inclusive [from, to] bounds of the week containing d.
func WeekWindow(d time.Time, first time.Weekday) (from, to time.Time) {
	from = WeekStart(d, first)
	return from, from.AddDate(0, 0, 6)
}

// ThirdWeekWindow returns the inclusive bounds of the third week of the month
// containing d: seven days starting fourteen days after the week start of the
// month's first day. The window may spill into the next month; dates inside
// it still count against the month that owns the window.
func ThirdWeekWindow(d time.Time, first time.Weekday) (from, to time.Time) {
	d = Midnight(d)
	firstOfMonth := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	from = WeekStart(firstOfMonth, first).AddDate(0, 0, 14)
	return from, from.AddDate(0, 0, 6)
}

// InWindow reports whether d falls within the inclusive [from, to] range.
func InWindow(d, from, to time.Time) bool {
	d = Midnight(d)
	return !d.Before(from) && !d.After(to)
}

// WeekOfMonth returns the ordinal week (1-5) of d within its month, counted in
// blocks of seven days from the 1st.
func WeekOfMonth(d time.Time) int {
	return (Midnight(d).Day()-1)/7 + 1
}

package shipment

import "time"

// DateKey encodes a calendar date as its YYYYMMDD integer surrogate key.
func DateKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// Quarter returns the calendar quarter (1-4) of a date.
func Quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// WeekdayIndex returns the day of week with Monday=0 and Sunday=6, the
// numbering the warehouse reports were built against.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

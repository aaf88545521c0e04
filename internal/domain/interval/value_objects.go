package interval

import (
	"fmt"
	"time"

	"court-booking/internal/pkg/errs"
)

const (
	dateLayout      = "2006-01-02"
	timeOfDayLayout = "15:04"

	MinutesPerDay = 24 * 60
)

var (
	ErrInvalidInterval  = errs.New("invalid interval: start must be before end")
	ErrInvalidDate      = errs.New("invalid date")
	ErrInvalidTimeOfDay = errs.New("invalid time of day")
)

// Date is a calendar day without a zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

func DateOf(t time.Time) Date {
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errs.Mark(errs.Wrap(err, "parse date "+s), ErrInvalidDate)
	}
	return DateOf(t), nil
}

func (d Date) Year() int          { return d.year }
func (d Date) Month() time.Month  { return d.month }
func (d Date) Day() int           { return d.day }
func (d Date) IsZero() bool       { return d.year == 0 && d.month == 0 && d.day == 0 }
func (d Date) Equal(o Date) bool  { return d == o }
func (d Date) Before(o Date) bool { return d.midnight().Before(o.midnight()) }

func (d Date) AddDays(n int) Date {
	return DateOf(d.midnight().AddDate(0, 0, n))
}

// At returns the instant of tod on d in loc.
func (d Date) At(tod TimeOfDay, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, d.month, d.day, 0, int(tod), 0, 0, loc)
}

func (d Date) String() string {
	return d.midnight().Format(dateLayout)
}

func (d Date) midnight() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// TimeOfDay counts minutes since midnight. 24:00 is accepted as an exclusive end.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	m := hour*60 + minute
	if m > MinutesPerDay {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(m), nil
}

func MustTimeOfDay(hour, minute int) TimeOfDay {
	tod, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(fmt.Sprintf("invalid time of day %02d:%02d", hour, minute))
	}
	return tod
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if s == "24:00" {
		return MinutesPerDay, nil
	}
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return 0, errs.Mark(errs.Wrap(err, "parse time of day "+s), ErrInvalidTimeOfDay)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Interval is the half-open range [start, end) on a single date.
type Interval struct {
	date  Date
	start TimeOfDay
	end   TimeOfDay
}

func New(date Date, start, end TimeOfDay) (Interval, error) {
	if start < 0 || end > MinutesPerDay || start >= end {
		return Interval{}, errs.Wrap(ErrInvalidInterval, fmt.Sprintf("%s %s-%s", date, start, end))
	}
	return Interval{date: date, start: start, end: end}, nil
}

func Parse(date, start, end string) (Interval, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Interval{}, err
	}
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Interval{}, err
	}
	return New(d, s, e)
}

func (i Interval) Date() Date       { return i.date }
func (i Interval) Start() TimeOfDay { return i.start }
func (i Interval) End() TimeOfDay   { return i.end }
func (i Interval) Minutes() int     { return int(i.end - i.start) }

func (i Interval) Duration() time.Duration {
	return time.Duration(i.Minutes()) * time.Minute
}

func (i Interval) StartAt(loc *time.Location) time.Time {
	return i.date.At(i.start, loc)
}

func (i Interval) EndAt(loc *time.Location) time.Time {
	return i.date.At(i.end, loc)
}

func (i Interval) String() string {
	return fmt.Sprintf("%s %s-%s", i.date, i.start, i.end)
}

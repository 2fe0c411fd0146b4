package tomledit

import (
	"fmt"
	"time"
)

// LocalDate represents a calendar day in no specific timezone.
type LocalDate struct {
	Year  int
	Month int
	Day   int
}

// AsTime converts d into a specific time instance at midnight in zone.
func (d LocalDate) AsTime(zone *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, zone)
}

// String returns RFC 3339 representation of d.
func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// LocalTime represents a time of day of no specific day in no specific
// timezone.
type LocalTime struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// String returns RFC 3339 representation of d.
func (d LocalTime) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", d.Hour, d.Minute, d.Second)
	if d.Nanosecond == 0 {
		return s
	}
	return s + fmt.Sprintf(".%09d", d.Nanosecond)
}

// LocalDateTime represents a time of a specific day in no specific
// timezone.
type LocalDateTime struct {
	LocalDate
	LocalTime
}

// AsTime converts d into a specific time instance in zone.
func (d LocalDateTime) AsTime(zone *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, d.Nanosecond, zone)
}

// String returns RFC 3339 representation of d.
func (d LocalDateTime) String() string {
	return d.LocalDate.String() + "T" + d.LocalTime.String()
}

// DatetimeKind discriminates the four TOML date/time literal forms
// (§2): an offset date-time carries a zone, a local date-time/date/time
// do not.
type DatetimeKind int

const (
	KindOffsetDateTime DatetimeKind = iota
	KindLocalDateTime
	KindLocalDate
	KindLocalTime
)

// Datetime is the closed union of the four TOML date/time literal forms.
// Only the field matching Kind is meaningful.
type Datetime struct {
	kind DatetimeKind

	offset     LocalDateTime
	zoneOffset int // seconds east of UTC; zoneIsZ distinguishes "Z" from "+00:00"
	zoneIsZ    bool

	localDateTime LocalDateTime
	localDate     LocalDate
	localTime     LocalTime
}

// NewOffsetDateTime builds an offset date-time value. zone must be UTC or
// a fixed-offset zone, as returned by time.FixedZone.
func NewOffsetDateTime(t time.Time) Datetime {
	_, offsetSeconds := t.Zone()
	return Datetime{
		kind: KindOffsetDateTime,
		offset: LocalDateTime{
			LocalDate: LocalDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()},
			LocalTime: LocalTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanosecond: t.Nanosecond()},
		},
		zoneOffset: offsetSeconds,
		zoneIsZ:    offsetSeconds == 0 && t.Location() == time.UTC,
	}
}

// NewLocalDateTimeValue builds a local date-time value.
func NewLocalDateTimeValue(d LocalDateTime) Datetime {
	return Datetime{kind: KindLocalDateTime, localDateTime: d}
}

// NewLocalDateValue builds a local date value.
func NewLocalDateValue(d LocalDate) Datetime { return Datetime{kind: KindLocalDate, localDate: d} }

// NewLocalTimeValue builds a local time value.
func NewLocalTimeValue(t LocalTime) Datetime { return Datetime{kind: KindLocalTime, localTime: t} }

// Kind reports which of the four date/time forms this value holds.
func (d Datetime) Kind() DatetimeKind { return d.kind }

// AsTime converts d into a time.Time in zone — used only for the local
// variants, since an offset date-time already carries its own zone. A
// local time is placed on January 1 of year 1.
func (d Datetime) AsTime(zone *time.Location) time.Time {
	switch d.kind {
	case KindOffsetDateTime:
		loc := time.FixedZone("", d.zoneOffset)
		return d.offset.AsTime(loc)
	case KindLocalDateTime:
		return d.localDateTime.AsTime(zone)
	case KindLocalDate:
		return d.localDate.AsTime(zone)
	default:
		t := d.localTime
		return time.Date(1, time.January, 1, t.Hour, t.Minute, t.Second, t.Nanosecond, zone)
	}
}

// String renders d back to its RFC 3339 literal form.
func (d Datetime) String() string {
	switch d.kind {
	case KindOffsetDateTime:
		s := d.offset.String()
		if d.zoneIsZ {
			return s + "Z"
		}
		sign := "+"
		off := d.zoneOffset
		if off < 0 {
			sign = "-"
			off = -off
		}
		return fmt.Sprintf("%s%s%02d:%02d", s, sign, off/3600, (off%3600)/60)
	case KindLocalDateTime:
		return d.localDateTime.String()
	case KindLocalDate:
		return d.localDate.String()
	default:
		return d.localTime.String()
	}
}

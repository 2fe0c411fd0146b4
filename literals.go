package tomledit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// parseInteger parses a TOML integer literal's bytes, dispatching on the
// 0x/0o/0b base prefixes.
func parseInteger(b []byte) (int64, error) {
	if len(b) > 2 && b[0] == '0' {
		switch b[1] {
		case 'x':
			return parseIntHex(b)
		case 'b':
			return parseIntBin(b)
		case 'o':
			return parseIntOct(b)
		default:
			return 0, newParseError(b[1:2], "invalid base: '%c'", b[1])
		}
	}
	return parseIntDec(b)
}

func parseLocalDate(b []byte) (LocalDate, error) {
	// full-date = date-fullyear "-" date-month "-" date-mday

	date := LocalDate{}

	if len(b) != 10 || b[4] != '-' || b[7] != '-' {
		return date, newParseError(b, "dates are expected to have the format YYYY-MM-DD")
	}

	var err error

	date.Year, err = parseDecimalDigits(b[0:4])
	if err != nil {
		return date, err
	}

	v, err := parseDecimalDigits(b[5:7])
	if err != nil {
		return date, err
	}
	date.Month = v

	date.Day, err = parseDecimalDigits(b[8:10])
	if err != nil {
		return date, err
	}

	return date, nil
}

func parseDecimalDigits(b []byte) (int, error) {
	v := 0
	for _, c := range b {
		if !isASCIIDigit(c) {
			return 0, fmt.Errorf("expected digit")
		}
		v *= 10
		v += int(c - '0')
	}
	return v, nil
}

// parseOffsetDateTime parses a full offset date-time literal into a
// Datetime with Kind() == KindOffsetDateTime.
func parseOffsetDateTime(b []byte) (Datetime, error) {
	dt, rest, err := parseLocalDateTime(b)
	if err != nil {
		return Datetime{}, err
	}

	if len(rest) == 0 {
		return Datetime{}, fmt.Errorf("date-time missing timezone information")
	}

	if rest[0] == 'Z' || rest[0] == 'z' {
		rest = rest[1:]
		if len(rest) > 0 {
			return Datetime{}, newParseError(rest, "extra bytes at the end of the timezone")
		}
		t := NewOffsetDateTime(dt.AsTime(time.UTC))
		return t, nil
	}

	if len(rest) != 6 {
		return Datetime{}, newParseError(rest, "invalid date-time timezone")
	}
	direction := 1
	switch rest[0] {
	case '+':
	case '-':
		direction = -1
	default:
		return Datetime{}, newParseError(rest[0:1], "invalid timezone offset character")
	}

	hours := digitsToInt(rest[1:3])
	minutes := digitsToInt(rest[4:6])
	seconds := direction * (hours*3600 + minutes*60)
	zone := time.FixedZone("", seconds)

	return NewOffsetDateTime(dt.AsTime(zone)), nil
}

func digitsToInt(b []byte) int {
	v, _ := parseDecimalDigits(b)
	return v
}

func parseLocalDateTime(b []byte) (LocalDateTime, []byte, error) {
	dt := LocalDateTime{}

	if len(b) < 11 {
		return dt, nil, fmt.Errorf("local datetimes are expected to have the format YYYY-MM-DDTHH:MM:SS[.NNNNNN]")
	}

	date, err := parseLocalDate(b[:10])
	if err != nil {
		return dt, nil, err
	}
	dt.LocalDate = date

	sep := b[10]
	if sep != 'T' && sep != 't' && sep != ' ' {
		return dt, nil, fmt.Errorf("datetime separator is expected to be T or a space")
	}

	t, rest, err := parseLocalTime(b[11:])
	if err != nil {
		return dt, nil, err
	}
	dt.LocalTime = t

	return dt, rest, nil
}

// parseLocalTime also returns the bytes it didn't consume, so
// parseOffsetDateTime can parse those as a timezone.
func parseLocalTime(b []byte) (LocalTime, []byte, error) {
	t := LocalTime{}

	if len(b) < 8 {
		return t, nil, fmt.Errorf("times are expected to have the format HH:MM:SS[.NNNNNN]")
	}

	var err error
	t.Hour, err = parseDecimalDigits(b[0:2])
	if err != nil {
		return t, nil, err
	}
	if b[2] != ':' {
		return t, nil, newParseError(b[2:3], "expecting colon between hours and minutes")
	}
	t.Minute, err = parseDecimalDigits(b[3:5])
	if err != nil {
		return t, nil, err
	}
	if b[5] != ':' {
		return t, nil, newParseError(b[5:6], "expecting colon between minutes and seconds")
	}
	t.Second, err = parseDecimalDigits(b[6:8])
	if err != nil {
		return t, nil, err
	}

	if len(b) >= 15 && b[8] == '.' {
		t.Nanosecond, err = parseDecimalDigits(b[9:15])
		if err != nil {
			return t, nil, err
		}
		return t, b[15:], nil
	}

	return t, b[8:], nil
}

func parseFloat(b []byte) (float64, error) {
	if len(b) == 4 && (b[0] == '+' || b[0] == '-') && b[1] == 'n' && b[2] == 'a' && b[3] == 'n' {
		return math.NaN(), nil
	}
	if len(b) == 3 && b[0] == 'n' && b[1] == 'a' && b[2] == 'n' {
		return math.NaN(), nil
	}

	tok := string(b)
	if err := numberContainsInvalidUnderscore(tok); err != nil {
		return 0, err
	}
	cleanedVal := cleanupNumberToken(tok)
	if cleanedVal[0] == '.' {
		return 0, fmt.Errorf("float cannot start with a dot")
	}
	if cleanedVal[len(cleanedVal)-1] == '.' {
		return 0, fmt.Errorf("float cannot end with a dot")
	}
	return strconv.ParseFloat(cleanedVal, 64)
}

func parseIntHex(b []byte) (int64, error) {
	cleanedVal := cleanupNumberToken(string(b))
	if err := hexNumberContainsInvalidUnderscore(cleanedVal); err != nil {
		return 0, err
	}
	return strconv.ParseInt(cleanedVal[2:], 16, 64)
}

func parseIntOct(b []byte) (int64, error) {
	cleanedVal := cleanupNumberToken(string(b))
	if err := numberContainsInvalidUnderscore(cleanedVal); err != nil {
		return 0, err
	}
	return strconv.ParseInt(cleanedVal[2:], 8, 64)
}

func parseIntBin(b []byte) (int64, error) {
	cleanedVal := cleanupNumberToken(string(b))
	if err := numberContainsInvalidUnderscore(cleanedVal); err != nil {
		return 0, err
	}
	return strconv.ParseInt(cleanedVal[2:], 2, 64)
}

func parseIntDec(b []byte) (int64, error) {
	cleanedVal := cleanupNumberToken(string(b))
	if err := numberContainsInvalidUnderscore(cleanedVal); err != nil {
		return 0, err
	}
	return strconv.ParseInt(cleanedVal, 10, 64)
}

func numberContainsInvalidUnderscore(value string) error {
	// underscores enhance readability in large numbers; each one must be
	// surrounded by at least one digit on each side.
	hasBefore := false
	for idx, r := range value {
		if r == '_' {
			if !hasBefore || idx+1 >= len(value) || !isASCIIDigit(value[idx+1]) {
				return errInvalidUnderscore
			}
		}
		hasBefore = isASCIIDigitRune(r)
	}
	return nil
}

func hexNumberContainsInvalidUnderscore(value string) error {
	hasBefore := false
	for idx, r := range value {
		if r == '_' {
			if !hasBefore || idx+1 >= len(value) {
				return errInvalidUnderscoreHex
			}
		}
		hasBefore = isHexDigitRune(r)
	}
	return nil
}

func cleanupNumberToken(value string) string {
	return strings.Replace(value, "_", "", -1)
}

func isHexDigitRune(r rune) bool {
	return isASCIIDigitRune(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isASCIIDigitRune(r rune) bool { return r >= '0' && r <= '9' }

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

var errInvalidUnderscore = errors.New("invalid use of _ in number")
var errInvalidUnderscoreHex = errors.New("invalid use of _ in hex number")

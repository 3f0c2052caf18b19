package model

import (
	"errors"
	"fmt"
	"strings"
)

// Month is one of the twelve English month names.
type Month string

// Year is one of the selectable budget years, kept as its display string.
type Year string

// Months lists the selectable months in calendar order.
var Months = []Month{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Years lists the selectable years.
var Years = []Year{"2024", "2025", "2026", "2027", "2028"}

const (
	DefaultMonth Month = "September"
	DefaultYear  Year  = "2024"
)

var (
	ErrUnknownMonth = errors.New("unknown month")
	ErrUnknownYear  = errors.New("unknown year")
)

// Period is the active month/year pair.
type Period struct {
	Month Month
	Year  Year
}

// DefaultPeriod returns September 2024.
func DefaultPeriod() Period {
	return Period{Month: DefaultMonth, Year: DefaultYear}
}

func (p Period) String() string {
	return string(p.Month) + " " + string(p.Year)
}

// ParseMonth matches a month by full name or three-letter prefix, ignoring case.
func ParseMonth(s string) (Month, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if len(v) >= 3 {
		for _, m := range Months {
			name := strings.ToLower(string(m))
			if name == v || (len(v) == 3 && strings.HasPrefix(name, v)) {
				return m, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMonth, s)
}

// ParseYear accepts only members of Years.
func ParseYear(s string) (Year, error) {
	v := Year(strings.TrimSpace(s))
	for _, y := range Years {
		if y == v {
			return y, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownYear, s)
}

// NextMonth cycles forward (step 1) or backward (step -1) through Months,
// wrapping at the ends.
func NextMonth(m Month, step int) Month {
	return Months[cycle(indexOf(Months, m), step, len(Months))]
}

// NextYear cycles through Years, wrapping at the ends.
func NextYear(y Year, step int) Year {
	return Years[cycle(indexOf(Years, y), step, len(Years))]
}

func indexOf[T comparable](list []T, v T) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return 0
}

func cycle(i, step, n int) int {
	return ((i+step)%n + n) % n
}

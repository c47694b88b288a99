package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Time is a clock time within a single day, stored as an hour-minute pair.
// Use NewTime to construct one: out-of-range components are rejected there,
// so a Time held by a Period is always well-formed.
type Time struct {
	Hour    int
	Minutes int
}

func NewTime(hour, minutes int) (Time, error) {
	if hour < 0 || hour >= 24 || minutes < 0 || minutes >= 60 {
		return Time{}, fmt.Errorf("time %v:%v is not within bounds", hour, minutes)
	}
	return Time{Hour: hour, Minutes: minutes}, nil
}

// ParseClockTime parses a 12-hour display string such as "1:50PM" or "10:00AM".
func ParseClockTime(value string) (Time, error) {
	length := len(value)
	colonIndex := strings.Index(value, ":")
	if length < 5 || colonIndex < 1 {
		return Time{}, fmt.Errorf("cannot parse clock time %q", value)
	}

	meridian := value[length-2:]
	if meridian != "AM" && meridian != "PM" {
		return Time{}, fmt.Errorf("cannot parse clock time %q: missing meridian", value)
	}

	hour, err := strconv.Atoi(value[:colonIndex])
	if err != nil {
		return Time{}, fmt.Errorf("cannot parse clock time %q: %v", value, err)
	}
	minutes, err := strconv.Atoi(value[length-4 : length-2])
	if err != nil {
		return Time{}, fmt.Errorf("cannot parse clock time %q: %v", value, err)
	}

	if meridian == "PM" && hour != 12 {
		hour += 12
	}

	return NewTime(hour, minutes)
}

// Value returns the fractional-hour representation (9:30 -> 9.5) used for
// interval comparisons.
func (t Time) Value() float64 {
	return float64(t.Hour) + float64(t.Minutes)/60.0
}

func (t Time) Compare(other Time) int {
	if t.Hour == other.Hour {
		if t.Minutes == other.Minutes {
			return 0
		}
		if t.Minutes < other.Minutes {
			return -1
		}
		return 1
	}
	if t.Hour < other.Hour {
		return -1
	}
	return 1
}

// String renders the time in the 12-hour display format ("1:05PM").
func (t Time) String() string {
	minutes := strconv.Itoa(t.Minutes)
	if len(minutes) == 1 {
		minutes = "0" + minutes
	}

	if t.Hour <= 12 {
		meridian := "AM"
		if t.Hour == 12 {
			meridian = "PM"
		}
		return fmt.Sprintf("%v:%v%v", t.Hour, minutes, meridian)
	}
	return fmt.Sprintf("%v:%v%v", t.Hour-12, minutes, "PM")
}

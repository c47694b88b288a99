package model

import (
	"fmt"
	"strings"
)

// Day is a day of the week on which a period meets.
type Day int

const (
	Sunday Day = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = map[Day][2]string{
	Sunday:    {"sun", "Sunday"},
	Monday:    {"mon", "Monday"},
	Tuesday:   {"tue", "Tuesday"},
	Wednesday: {"wed", "Wednesday"},
	Thursday:  {"thu", "Thursday"},
	Friday:    {"fri", "Friday"},
	Saturday:  {"sat", "Saturday"},
}

func (d Day) String() string {
	return dayNames[d][1]
}

func (d Day) ShortName() string {
	return dayNames[d][0]
}

// DayByName resolves a full day name, case-insensitively.
func DayByName(name string) (Day, error) {
	lowerName := strings.ToLower(name)
	for day, names := range dayNames {
		if strings.ToLower(names[1]) == lowerName {
			return day, nil
		}
	}
	return 0, fmt.Errorf("non-existent day of the week name: %v", name)
}

// DayByShortName resolves a three-letter day name ("mon", "tue", ...).
func DayByShortName(shortName string) (Day, error) {
	for day, names := range dayNames {
		if names[0] == shortName {
			return day, nil
		}
	}
	return 0, fmt.Errorf("non-existent day of the week name: %v", shortName)
}

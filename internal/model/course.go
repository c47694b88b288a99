package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Department groups the courses of one academic department.
type Department struct {
	Abbreviation string
	Name         string
	Courses      []*Course
}

// Course is a subject offering owning an ordered list of candidate sections.
// Courses, sections and periods are read-only inputs to the permutation
// engine; nothing in this package mutates them.
type Course struct {
	Department  *Department
	Name        string
	Number      string
	Description string
	Sections    []*Section
}

func (c *Course) String() string {
	return fmt.Sprintf("%v (%v)", c.Name, c.Abbreviation())
}

// Abbreviation is the department abbreviation followed by the course number
// ("CS2102").
func (c *Course) Abbreviation() string {
	abbreviation := ""
	if c.Department != nil {
		abbreviation = c.Department.Abbreviation
	}
	return abbreviation + c.Number
}

func (c *Course) HasAvailableSeats() bool {
	return lo.SomeBy(c.Sections, func(section *Section) bool {
		return section.HasAvailableSeats()
	})
}

// HasAvailableSeatsForTerm reports whether any open section of the course is
// offered in the given term.
func (c *Course) HasAvailableSeatsForTerm(letter rune) bool {
	return lo.SomeBy(c.Sections, func(section *Section) bool {
		return section.HasAvailableSeats() && lo.Contains(ExtractTermLetters(section.Term), letter)
	})
}

func (c *Course) HasAvailableWaitlist() bool {
	return lo.SomeBy(c.Sections, func(section *Section) bool {
		return section.HasAvailableWaitlist()
	})
}

func (c *Course) HasAvailableWaitlistForTerm(letter rune) bool {
	return lo.SomeBy(c.Sections, func(section *Section) bool {
		return section.HasAvailableWaitlist() && lo.Contains(ExtractTermLetters(section.Term), letter)
	})
}

// Section is one specific offering of a course: an instructor/time-slot
// group containing one or more meeting periods.
type Section struct {
	Course         *Course
	Number         string
	Seats          int
	SeatsAvailable int
	Semester       string
	Term           string
	Note           string
	Description    string
	ActualWaitlist int
	MaxWaitlist    int
	Periods        []*Period
}

// UsableInPermutations reports whether the section is a real offering rather
// than an interest-list placeholder.
func (s *Section) UsableInPermutations() bool {
	return !strings.HasPrefix(strings.ToLower(s.Number), "interest list")
}

// HasAvailableSeats reports whether every period of the section still has
// open seats.
func (s *Section) HasAvailableSeats() bool {
	for _, period := range s.Periods {
		if period.Filled() {
			return false
		}
	}
	return true
}

// HasAvailableWaitlist reports whether every period of the section still has
// waitlist capacity.
func (s *Section) HasAvailableWaitlist() bool {
	for _, period := range s.Periods {
		if period.WaitlistFilled() {
			return false
		}
	}
	return true
}

// Period is one recurring meeting block within a section: a set of weekdays
// plus an optional time range. StartTime and EndTime are either both set or
// both nil; a period without times can never conflict with anything.
type Period struct {
	Section         *Section
	Type            string
	Professor       string
	Days            map[Day]bool
	StartTime       *Time
	EndTime         *Time
	Location        string
	Seats           int
	SeatsAvailable  int
	ActualWaitlist  int
	MaxWaitlist     int
	SpecificSection string
}

func (p *Period) Filled() bool {
	return p.SeatsAvailable <= 0
}

func (p *Period) WaitlistFilled() bool {
	return p.ActualWaitlist == p.MaxWaitlist
}

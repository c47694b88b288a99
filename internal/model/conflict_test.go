package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func periodOn(day Day, start, end Time) *Period {
	return &Period{
		Days:      map[Day]bool{day: true},
		StartTime: &start,
		EndTime:   &end,
	}
}

func sectionWith(number, term string, periods ...*Period) *Section {
	section := &Section{Number: number, Term: term, Periods: periods}
	for _, period := range periods {
		period.Section = section
	}
	return section
}

func TestPeriodsWithoutTimesNeverConflict(t *testing.T) {
	// Arrange
	timeless := &Period{Days: map[Day]bool{Monday: true}}
	timed := periodOn(Monday, Time{Hour: 9}, Time{Hour: 17})

	section1 := sectionWith("A01", "A Term", timeless)
	section2 := sectionWith("B01", "A Term", timed)

	// Act & Assert
	assert.Empty(t, DetectConflicts([]*Section{section1, section2}))
}

func TestOverlapBoundary(t *testing.T) {
	t.Run("back-to-back periods do not conflict", func(t *testing.T) {
		// Arrange
		section1 := sectionWith("A01", "A Term", periodOn(Monday, Time{Hour: 9}, Time{Hour: 10}))
		section2 := sectionWith("B01", "A Term", periodOn(Monday, Time{Hour: 10}, Time{Hour: 11}))

		// Act & Assert
		assert.Empty(t, DetectConflicts([]*Section{section1, section2}))
	})

	t.Run("overlapping periods conflict", func(t *testing.T) {
		// Arrange
		section1 := sectionWith("A01", "A Term", periodOn(Monday, Time{Hour: 9}, Time{Hour: 10, Minutes: 30}))
		section2 := sectionWith("B01", "A Term", periodOn(Monday, Time{Hour: 10}, Time{Hour: 11}))

		// Act
		conflicts := DetectConflicts([]*Section{section1, section2})

		// Assert
		assert.Len(t, conflicts, 1)
		assert.Equal(t, section1, conflicts[0].Section1)
		assert.Equal(t, section2, conflicts[0].Section2)
		assert.Equal(t, "Time conflict", conflicts[0].Reason)
	})
}

func TestDisjointDaysDoNotConflict(t *testing.T) {
	// Arrange
	section1 := sectionWith("A01", "A Term", periodOn(Monday, Time{Hour: 9}, Time{Hour: 10}))
	section2 := sectionWith("B01", "A Term", periodOn(Tuesday, Time{Hour: 9}, Time{Hour: 10}))

	// Act & Assert
	assert.Empty(t, DetectConflicts([]*Section{section1, section2}))
}

func TestDisjointTermsSuppressConflicts(t *testing.T) {
	// Arrange: identical meeting times, but one offering is in A term and
	// the other in C term
	section1 := sectionWith("A01", "A Term", periodOn(Monday, Time{Hour: 9}, Time{Hour: 10}))
	section2 := sectionWith("B01", "C Term", periodOn(Monday, Time{Hour: 9}, Time{Hour: 10}))

	// Act & Assert
	assert.Empty(t, DetectConflicts([]*Section{section1, section2}))
	assert.Len(t, DetectConflicts([]*Section{
		section1,
		sectionWith("C01", "A Term / C Term", periodOn(Monday, Time{Hour: 9}, Time{Hour: 10})),
	}), 1)
}

func TestConflictsAreReportedPerPeriodPair(t *testing.T) {
	// Arrange: both periods of section1 overlap section2's single period
	section1 := sectionWith("A01", "A Term",
		periodOn(Monday, Time{Hour: 9}, Time{Hour: 12}),
		periodOn(Monday, Time{Hour: 10}, Time{Hour: 11}),
	)
	section2 := sectionWith("B01", "A Term", periodOn(Monday, Time{Hour: 10, Minutes: 30}, Time{Hour: 13}))

	// Act
	conflicts := DetectConflicts([]*Section{section1, section2})

	// Assert: period pairs appear in section period order
	assert.Len(t, conflicts, 2)
	assert.Equal(t, section1.Periods[0], conflicts[0].Period1)
	assert.Equal(t, section1.Periods[1], conflicts[1].Period1)
}

func TestConflictOrderIsDeterministic(t *testing.T) {
	// Arrange: three mutually overlapping sections
	section1 := sectionWith("A01", "A Term", periodOn(Monday, Time{Hour: 9}, Time{Hour: 11}))
	section2 := sectionWith("B01", "A Term", periodOn(Monday, Time{Hour: 10}, Time{Hour: 12}))
	section3 := sectionWith("C01", "A Term", periodOn(Monday, Time{Hour: 10, Minutes: 30}, Time{Hour: 13}))
	sections := []*Section{section1, section2, section3}

	// Act
	conflicts := DetectConflicts(sections)

	// Assert: pairs are visited in input order (i, then j > i)
	assert.Len(t, conflicts, 3)
	assert.Equal(t, [2]*Section{section1, section2}, [2]*Section{conflicts[0].Section1, conflicts[0].Section2})
	assert.Equal(t, [2]*Section{section1, section3}, [2]*Section{conflicts[1].Section1, conflicts[1].Section2})
	assert.Equal(t, [2]*Section{section2, section3}, [2]*Section{conflicts[2].Section1, conflicts[2].Section2})

	// Assert: re-running with identical input yields an identical list
	assert.Equal(t, conflicts, DetectConflicts(sections))
}

func TestConflictSetIsSymmetric(t *testing.T) {
	// Arrange
	section1 := sectionWith("A01", "A Term", periodOn(Monday, Time{Hour: 9}, Time{Hour: 11}))
	section2 := sectionWith("B01", "A Term", periodOn(Monday, Time{Hour: 10}, Time{Hour: 12}))
	section3 := sectionWith("C01", "B Term", periodOn(Monday, Time{Hour: 10}, Time{Hour: 12}))

	pairs := func(conflicts []Conflict) map[[2]*Section]bool {
		set := map[[2]*Section]bool{}
		for _, conflict := range conflicts {
			first, second := conflict.Section1, conflict.Section2
			if first.Number > second.Number {
				first, second = second, first
			}
			set[[2]*Section{first, second}] = true
		}
		return set
	}

	// Act
	forward := DetectConflicts([]*Section{section1, section2, section3})
	backward := DetectConflicts([]*Section{section3, section2, section1})

	// Assert: the set of unordered conflicting pairs is input-order invariant
	assert.Equal(t, pairs(forward), pairs(backward))
}

// Package planner models a student's course picks as immutable snapshots
// handed to the permutation engine. The engine never sees live, mutable
// selection state: every toggle produces a fresh value.
package planner

import (
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"

	"courseplanner/internal/model"
)

// MaxCourses is the hard limit on simultaneously planned courses.
const MaxCourses = 18

var termLetters = []rune{'A', 'B', 'C', 'D'}

// CourseSelection pairs a course with the term letters the student has
// toggled on. Selections are value snapshots: ToggleTerm returns a new one
// and leaves the receiver untouched.
type CourseSelection struct {
	Course        *model.Course
	selectedTerms []rune
}

// NewCourseSelection selects every term in which the course still has seats
// or waitlist capacity.
func NewCourseSelection(course *model.Course) CourseSelection {
	selected := lo.Filter(termLetters, func(letter rune, _ int) bool {
		return course.HasAvailableSeatsForTerm(letter) || course.HasAvailableWaitlistForTerm(letter)
	})
	return CourseSelection{Course: course, selectedTerms: selected}
}

func (selection CourseSelection) IsTermSelected(letter rune) bool {
	return slices.Contains(selection.selectedTerms, letter)
}

// SelectedTerms returns the toggled-on letters in alphabetical order.
func (selection CourseSelection) SelectedTerms() []rune {
	letters := slices.Clone(selection.selectedTerms)
	slices.Sort(letters)
	return letters
}

// ToggleTerm flips one term letter and returns the updated selection.
func (selection CourseSelection) ToggleTerm(letter rune) CourseSelection {
	letters := slices.Clone(selection.selectedTerms)
	if index := slices.Index(letters, letter); index >= 0 {
		letters = slices.Delete(letters, index, index+1)
	} else {
		letters = append(letters, letter)
	}
	selection.selectedTerms = letters
	return selection
}

// Sections returns the course's candidate sections for permutation: those
// that still have seats or waitlist capacity and fall in a selected term.
func (selection CourseSelection) Sections() []*model.Section {
	return lo.Filter(selection.Course.Sections, func(section *model.Section, _ int) bool {
		if !section.HasAvailableSeats() && !section.HasAvailableWaitlist() {
			return false
		}
		sectionTerms := model.ExtractTermLetters(section.Term)
		return lo.SomeBy(selection.selectedTerms, func(letter rune) bool {
			return slices.Contains(sectionTerms, letter)
		})
	})
}

// Snapshot is an immutable set of course selections, one per planned course,
// in the order the student added them.
type Snapshot struct {
	selections []CourseSelection
}

func NewSnapshot(selections ...CourseSelection) (Snapshot, error) {
	if len(selections) > MaxCourses {
		return Snapshot{}, fmt.Errorf("cannot plan more than %v courses", MaxCourses)
	}

	seen := map[*model.Course]bool{}
	for _, selection := range selections {
		if seen[selection.Course] {
			return Snapshot{}, fmt.Errorf("course %v is already in the snapshot", selection.Course.Abbreviation())
		}
		seen[selection.Course] = true
	}

	return Snapshot{selections: slices.Clone(selections)}, nil
}

func (snapshot Snapshot) Selections() []CourseSelection {
	return slices.Clone(snapshot.selections)
}

// SectionLists returns the per-course candidate lists in selection order,
// ready for the permutations generator.
func (snapshot Snapshot) SectionLists() [][]*model.Section {
	return lo.Map(snapshot.selections, func(selection CourseSelection, _ int) []*model.Section {
		return selection.Sections()
	})
}

// TimeRange returns the whole-hour bounds of the visible schedule grid: the
// earliest start and latest end over every timed period of the planned
// courses, floored and ceiled, defaulting to 10:00-16:00.
func (snapshot Snapshot) TimeRange() (startHour, endHour int) {
	start, end := 10.0, 16.0

	for _, selection := range snapshot.selections {
		for _, section := range selection.Course.Sections {
			for _, period := range section.Periods {
				if period.StartTime == nil || period.EndTime == nil {
					continue
				}
				start = math.Min(period.StartTime.Value(), start)
				end = math.Max(period.EndTime.Value(), end)
			}
		}
	}

	return int(math.Floor(start)), int(math.Ceil(end))
}

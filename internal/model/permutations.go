package model

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// MaxPermutations is the hard ceiling on permutations generated per call.
const MaxPermutations = 50000

// SchedulePermutation is one complete one-section-per-course combination,
// annotated with the conflicts found among its sections.
type SchedulePermutation struct {
	Sections  []*Section
	Conflicts []Conflict
}

// ID returns a stable identifier for the permutation: its section numbers
// joined by "/".
func (permutation SchedulePermutation) ID() string {
	return strings.Join(lo.Map(permutation.Sections, func(section *Section, _ int) string {
		return section.Number
	}), "/")
}

// Professors returns the sorted distinct professor names teaching in this
// permutation, skipping blank and unassigned entries.
func (permutation SchedulePermutation) Professors() []string {
	professors := []string{}
	for _, section := range permutation.Sections {
		for _, period := range section.Periods {
			name := strings.TrimSpace(period.Professor)
			if name == "" || name == "Not Assigned" {
				continue
			}
			professors = append(professors, name)
		}
	}

	professors = lo.Uniq(professors)
	slices.Sort(professors)
	return professors
}

// GenerationResult is the outcome of one Generate call: the permutations in
// generation order, and whether the permutation limit cut enumeration short.
// An empty result with LimitReached == false means some course had no usable
// candidate section (or no courses were given).
type GenerationResult struct {
	Permutations []SchedulePermutation
	LimitReached bool
}

// PermutationsGenerator enumerates every way to pick exactly one section per
// course and annotates each combination with its time conflicts.
type PermutationsGenerator interface {
	// Generate takes one candidate-section list per course, in course order.
	// Interest-list placeholder sections are filtered out of each list first;
	// if any course is left with no usable section, the result is empty. The
	// output order is the lexicographic order induced by the input lists: the
	// first course varies slowest, the last course fastest. Enumeration stops
	// once the permutation limit is reached.
	Generate(sectionsPerCourse [][]*Section) GenerationResult
}

// NewPermutationsGenerator returns a generator bounded by MaxPermutations.
func NewPermutationsGenerator() PermutationsGenerator {
	return NewLimitedPermutationsGenerator(MaxPermutations)
}

func NewLimitedPermutationsGenerator(limit int) PermutationsGenerator {
	return &permutationsGeneratorImplementation{limit: limit}
}

type permutationsGeneratorImplementation struct {
	limit int
}

func (generator *permutationsGeneratorImplementation) Generate(sectionsPerCourse [][]*Section) GenerationResult {
	permutations := []SchedulePermutation{}

	if len(sectionsPerCourse) == 0 {
		return GenerationResult{Permutations: permutations}
	}

	sectionLists := make([][]*Section, 0, len(sectionsPerCourse))
	for _, sections := range sectionsPerCourse {
		usable := lo.Filter(sections, func(section *Section, _ int) bool {
			return section.UsableInPermutations()
		})
		// A schedule is impossible if one course has zero usable candidates
		if len(usable) == 0 {
			return GenerationResult{Permutations: permutations}
		}
		sectionLists = append(sectionLists, usable)
	}

	combination := make([]*Section, len(sectionLists))
	limitReached := generator.combine(sectionLists, 0, combination, &permutations)

	return GenerationResult{Permutations: permutations, LimitReached: limitReached}
}

// combine walks the Cartesian product of the section lists depth-first,
// filling combination[courseIndex] at each level. It returns true as soon as
// the permutation limit is reached, which aborts the whole traversal.
func (generator *permutationsGeneratorImplementation) combine(
	sectionLists [][]*Section,
	courseIndex int,
	combination []*Section,
	permutations *[]SchedulePermutation) bool {

	if len(*permutations) >= generator.limit {
		return true
	}

	if courseIndex >= len(sectionLists) {
		// The combination buffer is reused across the traversal, so each
		// permutation gets its own copy
		combinationCopy := make([]*Section, len(combination))
		copy(combinationCopy, combination)
		*permutations = append(*permutations, SchedulePermutation{
			Sections:  combinationCopy,
			Conflicts: DetectConflicts(combinationCopy),
		})
		return false
	}

	for _, section := range sectionLists[courseIndex] {
		if len(*permutations) >= generator.limit {
			return true
		}

		combination[courseIndex] = section
		if generator.combine(sectionLists, courseIndex+1, combination, permutations) {
			return true
		}
	}

	return false
}

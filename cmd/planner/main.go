package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/samber/lo"

	"courseplanner/internal/catalog"
	"courseplanner/internal/model"
	"courseplanner/internal/planner"
)

func main() {
	file := flag.String("file", "schedule.json", "schedule database JSON export")
	courses := flag.String("courses", "", "comma-separated course abbreviations (e.g. CS2102,MA1024)")
	show := flag.Int("show", 10, "number of permutations to print")
	flag.Parse()

	database, err := catalog.LoadFile(*file)
	if err != nil {
		log.Fatal(err)
	}

	selections := []planner.CourseSelection{}
	for _, abbreviation := range splitCourseList(*courses) {
		course, found := database.FindCourse(abbreviation)
		if !found {
			log.Fatalf("course %v is not in the schedule database", abbreviation)
		}
		selections = append(selections, planner.NewCourseSelection(course))
	}

	if len(selections) == 0 {
		log.Fatal("no courses selected")
	}

	snapshot, err := planner.NewSnapshot(selections...)
	if err != nil {
		log.Fatal(err)
	}

	sectionLists := snapshot.SectionLists()
	indexer := model.NewSelectionIndexer(lo.Map(sectionLists, func(sections []*model.Section, _ int) int {
		return len(sections)
	}))

	generator := model.NewPermutationsGenerator()
	result := generator.Generate(sectionLists)

	conflictFree := lo.CountBy(result.Permutations, func(permutation model.SchedulePermutation) bool {
		return len(permutation.Conflicts) == 0
	})

	fmt.Printf("Combinations: %v, Generated: %v, Conflict-free: %v\n",
		indexer.Total(), len(result.Permutations), conflictFree)
	if result.LimitReached {
		fmt.Printf("Warning: stopped after the first %v permutations\n", model.MaxPermutations)
	}

	startHour, endHour := snapshot.TimeRange()
	fmt.Printf("Schedule grid: %v:00 to %v:00\n", startHour, endHour)

	for i, permutation := range result.Permutations {
		if i >= *show {
			break
		}

		fmt.Printf("#%v %v\n", i+1, permutation.ID())
		if professors := permutation.Professors(); len(professors) > 0 {
			fmt.Printf("  Professors: %v\n", strings.Join(professors, ", "))
		}
		for _, conflict := range permutation.Conflicts {
			fmt.Printf("  %v: %v (%v-%v) and %v (%v-%v)\n",
				conflict.Reason,
				conflict.Section1.Number, conflict.Period1.StartTime, conflict.Period1.EndTime,
				conflict.Section2.Number, conflict.Period2.StartTime, conflict.Period2.EndTime,
			)
		}
	}
}

func splitCourseList(value string) []string {
	abbreviations := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			abbreviations = append(abbreviations, part)
		}
	}
	return abbreviations
}

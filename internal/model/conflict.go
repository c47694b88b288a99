package model

// Conflict records a time overlap between two periods belonging to two
// different sections of one schedule permutation.
type Conflict struct {
	Section1 *Section
	Section2 *Section
	Period1  *Period
	Period2  *Period
	Reason   string
}

const timeConflictReason = "Time conflict"

// DetectConflicts finds every time conflict among the sections of one
// combination. Each unordered pair of distinct sections is considered
// exactly once, in input order (i, then j > i); pairs whose term labels
// denote no common term letter are skipped entirely, since offerings in
// disjoint terms cannot meet at the same time. The output order is
// deterministic for a given input order.
func DetectConflicts(sections []*Section) []Conflict {
	conflicts := []Conflict{}

	for i := 0; i < len(sections); i++ {
		for j := i + 1; j < len(sections); j++ {
			section1, section2 := sections[i], sections[j]

			if !TermsOverlap(section1.Term, section2.Term) {
				continue
			}

			for _, period1 := range section1.Periods {
				for _, period2 := range section2.Periods {
					if periodsConflict(period1, period2) {
						conflicts = append(conflicts, Conflict{
							Section1: section1,
							Section2: section2,
							Period1:  period1,
							Period2:  period2,
							Reason:   timeConflictReason,
						})
					}
				}
			}
		}
	}

	return conflicts
}

// periodsConflict reports whether two periods meet on a common day with
// overlapping time ranges. Ranges are half-open: back-to-back periods where
// one ends exactly when the other starts do not conflict.
func periodsConflict(period1, period2 *Period) bool {
	if period1.StartTime == nil || period1.EndTime == nil ||
		period2.StartTime == nil || period2.EndTime == nil {
		return false
	}

	commonDay := false
	for day := range period1.Days {
		if period2.Days[day] {
			commonDay = true
			break
		}
	}
	if !commonDay {
		return false
	}

	start1, end1 := period1.StartTime.Value(), period1.EndTime.Value()
	start2, end2 := period2.StartTime.Value(), period2.EndTime.Value()

	return start1 < end2 && start2 < end1
}

package model

// SelectionIndexer maps a permutation's position in generation order to the
// per-course candidate choices it is built from, and vice versa. Positions
// follow the generator's lexicographic order: course 0 varies slowest, the
// last course fastest.
type SelectionIndexer interface {
	// Index returns the generation-order position of the given per-course
	// candidate choices.
	Index(choices []int) int
	// Choices returns the per-course candidate choices of the permutation at
	// the given position.
	Choices(index int) []int
	// Total returns the size of the full Cartesian product.
	Total() int
}

func NewSelectionIndexer(listSizes []int) SelectionIndexer {
	sizes := make([]int, len(listSizes))
	copy(sizes, listSizes)
	return &sortedSelectionIndexer{sizes: sizes}
}

type sortedSelectionIndexer struct {
	sizes []int
}

func (i *sortedSelectionIndexer) Index(choices []int) int {
	index := 0
	for course, choice := range choices {
		index = index*i.sizes[course] + choice
	}
	return index
}

func (i *sortedSelectionIndexer) Choices(index int) []int {
	choices := make([]int, len(i.sizes))
	for course := len(i.sizes) - 1; course >= 0; course-- {
		choices[course] = index % i.sizes[course]
		index = index / i.sizes[course]
	}
	return choices
}

func (i *sortedSelectionIndexer) Total() int {
	total := 1
	for _, size := range i.sizes {
		total *= size
	}
	return total
}

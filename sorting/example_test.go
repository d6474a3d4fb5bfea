package sorting_test

import (
	"fmt"

	"github.com/npillmayer/seq"
	"github.com/npillmayer/seq/sorting"
)

func ExampleMerge() {
	l := seq.Of(3, 1, 2, 4, 5)
	fmt.Println(sorting.Merge(l, sorting.Natural[int]()))
	// Output: [1,2,3,4,5]
}

func ExampleReversed() {
	l := seq.Of(3, 1, 2)
	fmt.Println(sorting.Quick(l, sorting.Reversed(sorting.Natural[int]())))
	// Output: [3,2,1]
}

func ExampleBy() {
	byLen := sorting.By(func(s string) int { return len(s) }, sorting.Natural[int]())
	fmt.Println(sorting.Insertion(seq.Of("lorem", "a", "sit"), byLen))
	// Output: [a,sit,lorem]
}

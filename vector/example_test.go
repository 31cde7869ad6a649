package vector_test

import (
	"fmt"

	"github.com/KaiCodesWithGithub/vector-operations/vector"
)

// ExampleAdd demonstrates element-wise addition of two equal-length vectors.
//
// Scenario:
//
//	a = [1, 2, 3, 4, 5]
//	b = [5, 4, 3, 2, 1]
//
// Complexity: O(n) time, O(n) memory.
func ExampleAdd() {
	a := []int{1, 2, 3, 4, 5}
	b := []int{5, 4, 3, 2, 1}

	sum, err := vector.Add(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sum)
	// Output: [6 6 6 6 6]
}

// ExampleSub demonstrates element-wise subtraction.
func ExampleSub() {
	diff, err := vector.Sub([]int{1, 2}, []int{5, 4})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(diff)
	// Output: [-4 -2]
}

// ExampleScale demonstrates uniform scaling by a scalar of the same type.
func ExampleScale() {
	scaled, err := vector.Scale([]int{1, 2, 3, 4, 5}, 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(scaled)
	// Output: [5 10 15 20 25]
}

// ExampleDot demonstrates the inner product with its fixed accumulation order.
func ExampleDot() {
	dot, err := vector.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(dot)
	// Output: 32
}

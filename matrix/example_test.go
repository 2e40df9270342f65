package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lucipher/field"
	"github.com/katalvlaran/lucipher/matrix"
)

// ExampleSolveLU factors an exact rational system and solves it back.
func ExampleSolveLU() {
	a, _ := matrix.FromRows(field.Rational, [][]field.Rat{
		{field.NewRat(2, 1), field.NewRat(1, 1)},
		{field.NewRat(1, 1), field.NewRat(3, 1)},
	})
	L, U, _ := matrix.LU(a)
	x, _ := matrix.SolveLU(L, U, []field.Rat{field.NewRat(3, 1), field.NewRat(5, 1)})
	fmt.Println(x[0], x[1])
	// Output: 4/5 7/5
}

// ExampleTril shows the lower/upper split used by the cipher key.
func ExampleTril() {
	k, _ := matrix.FromRows(field.F32, [][]field.Float32{{1, 0.2}, {0.1, 1}})
	l, _ := matrix.Tril(k)
	u, _ := matrix.Triu(k)
	fmt.Print(l)
	fmt.Print(u)
	// Output:
	// [  1,   0]
	// [0.1,   1]
	// [  1, 0.2]
	// [  0,   1]
}

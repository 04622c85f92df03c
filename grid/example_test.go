package grid_test

import (
	"fmt"

	"github.com/katalvlaran/mazerunner/grid"
)

// ExampleGrid_MoveGoal relocates the goal and shows the walls it refuses.
func ExampleGrid_MoveGoal() {
	g := grid.MustParse(`
		S.#
		...
		..G`)

	fmt.Println(g.MoveGoal(grid.C(0, 2))) // wall
	fmt.Println(g.MoveGoal(grid.C(1, 2)))
	fmt.Println(g)
	// Output:
	// false
	// true
	// S.#
	// ..G
	// ...
}

// ExampleGrid_ToggleWall edits obstacles the way a click in edit mode does.
func ExampleGrid_ToggleWall() {
	g, _ := grid.New(2, 4)
	g.ToggleWall(grid.C(0, 1))
	g.ToggleWall(grid.C(1, 2))
	g.ToggleWall(grid.C(0, 0)) // start is protected
	fmt.Println(g)
	// Output:
	// S#..
	// ..#G
}

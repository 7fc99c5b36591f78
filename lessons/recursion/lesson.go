package recursion

import (
	"context"
	"fmt"
	"strings"

	"github.com/GoCodeAlone/demokit"
)

// Lesson is the recursion demonstration.
type Lesson struct{}

// New returns the lesson.
func New() demokit.Lesson { return Lesson{} }

func (Lesson) Name() string  { return "recursion" }
func (Lesson) Title() string { return "Recursion" }

func (l Lesson) Steps() []demokit.Step {
	return []demokit.Step{
		{Title: "Factorial", Run: l.factorial},
		{Title: "Fibonacci with and without memoization", Run: l.fibonacci},
		{Title: "Digit sum and power", Run: l.numeric},
		{Title: "Recursing over lists and strings", Run: l.lists},
		{Title: "Binary tree traversal", Run: l.tree},
		{Title: "Nested structures", Run: l.nested},
		{Title: "Maze solving with backtracking", Run: l.maze},
		{Title: "Permutations", Run: l.permutations},
		{Title: "Tower of Hanoi", Run: l.hanoi},
	}
}

func (Lesson) factorial(_ context.Context, r *demokit.Runner) error {
	for _, n := range []int{0, 1, 5, 10, 20} {
		v, err := Factorial(n)
		if err != nil {
			return err
		}
		r.Say("%d! = %d", n, v)
	}
	r.Try(func() error { _, err := Factorial(-1); return err })
	_, err := Factorial(21)
	return err
}

func (Lesson) fibonacci(_ context.Context, r *demokit.Runner) error {
	seq := make([]string, 0, 8)
	for n := range 8 {
		seq = append(seq, fmt.Sprint(Fibonacci(n, nil)))
	}
	r.Say("fib(0..7): %s", strings.Join(seq, ", "))

	plain, memo := 0, 0
	a := Fibonacci(25, &plain)
	b := FibonacciMemo(25, make(map[int]int), &memo)
	r.Say("fib(25) = %d using %d calls", a, plain)
	r.Say("fib(25) = %d using %d calls with memoization", b, memo)
	return nil
}

func (Lesson) numeric(_ context.Context, r *demokit.Runner) error {
	r.Say("DigitSum(98765) = %d", DigitSum(98765))
	r.Say("DigitSum(-42) = %d", DigitSum(-42))
	r.Say("Power(2, 10) = %g", Power(2, 10))
	r.Say("Power(2, -2) = %g", Power(2, -2))
	r.Say("Power(7, 0) = %g", Power(7, 0))
	return nil
}

func (Lesson) lists(_ context.Context, r *demokit.Runner) error {
	r.Say("SumList([1 2 3 4 5]) = %d", SumList([]int{1, 2, 3, 4, 5}))
	r.Say("SumList([]) = %d", SumList(nil))
	r.Say("Reverse(%q) = %q", "recursion", Reverse("recursion"))
	for _, word := range []string{"racecar", "gopher"} {
		r.Say("IsPalindrome(%q) = %t", word, IsPalindrome(word))
	}
	return nil
}

func (Lesson) tree(_ context.Context, r *demokit.Runner) error {
	var root *TreeNode
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		root = root.Insert(v)
	}

	var visited []int
	root.InOrder(func(v int) { visited = append(visited, v) })
	r.Say("In-order: %v", visited)
	r.Say("Nodes: %d, height: %d", root.Count(), root.Height())
	return nil
}

func (Lesson) nested(_ context.Context, r *demokit.Runner) error {
	data := []any{1, []any{2, []any{3, []any{4}}}, 5}
	r.Say("Depth: %d", NestedDepth(data))
	r.Say("Flattened: %v", Flatten(data))
	r.Say("Depth of an empty list: %d, of a plain value: %d", NestedDepth([]any{}), NestedDepth(7))
	return nil
}

func (Lesson) maze(_ context.Context, r *demokit.Runner) error {
	grid := [][]int{
		{0, 1, 0, 0},
		{0, 1, 0, 1},
		{0, 0, 0, 1},
		{1, 1, 0, 0},
	}
	for _, row := range grid {
		r.Bullet("%v", row)
	}

	path, found := SolveMaze(grid, Cell{0, 0}, Cell{3, 3})
	r.Say("Path found: %t", found)
	steps := make([]string, len(path))
	for i, c := range path {
		steps[i] = c.String()
	}
	r.Say("Path: %s", strings.Join(steps, " -> "))
	r.Say("Grid after solving: %v", grid)

	_, found = SolveMaze(grid, Cell{0, 0}, Cell{0, 3})
	r.Say("Path to (0,3) found: %t", found)
	return nil
}

func (Lesson) permutations(_ context.Context, r *demokit.Runner) error {
	perms := Permutations("abc")
	r.List(fmt.Sprintf("%d permutations of abc", len(perms)), perms)
	return nil
}

func (Lesson) hanoi(_ context.Context, r *demokit.Runner) error {
	moves := Hanoi(3, "A", "C", "B", func(disk int, from, to string) {
		r.Bullet("move disk %d from %s to %s", disk, from, to)
	})
	r.Say("3 disks took %d moves", moves)
	r.Say("10 disks take %d moves", Hanoi(10, "A", "C", "B", nil))
	return nil
}

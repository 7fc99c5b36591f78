// Package recursion collects recursive functions: classic numeric
// recurrences, recursion over lists and trees, nested structures, a
// backtracking maze solver, permutations and the Tower of Hanoi.
package recursion

import (
	"fmt"

	"github.com/GoCodeAlone/demokit"
)

// MaxFactorial is the largest n whose factorial fits in a uint64.
const MaxFactorial = 20

// Factorial returns n!. Base case: 0! = 1.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, demokit.NewValidationError("n", n, "factorial is undefined for negative numbers")
	}
	if n > MaxFactorial {
		return 0, demokit.NewValidationError("n", n, fmt.Sprintf("factorial overflows above %d", MaxFactorial))
	}
	if n == 0 {
		return 1, nil
	}
	rest, err := Factorial(n - 1)
	if err != nil {
		return 0, err
	}
	return uint64(n) * rest, nil
}

// Fibonacci is the plain double recursion: fib(0)=0, fib(1)=1,
// fib(n)=fib(n-1)+fib(n-2). calls, when non-nil, counts invocations.
func Fibonacci(n int, calls *int) int {
	if calls != nil {
		*calls++
	}
	if n < 2 {
		return n
	}
	return Fibonacci(n-1, calls) + Fibonacci(n-2, calls)
}

// FibonacciMemo computes the same sequence, caching every result in memo.
func FibonacciMemo(n int, memo map[int]int, calls *int) int {
	if calls != nil {
		*calls++
	}
	if n < 2 {
		return n
	}
	if v, ok := memo[n]; ok {
		return v
	}
	v := FibonacciMemo(n-1, memo, calls) + FibonacciMemo(n-2, memo, calls)
	memo[n] = v
	return v
}

// DigitSum adds the decimal digits of n, ignoring the sign.
func DigitSum(n int) int {
	if n < 0 {
		return DigitSum(-n)
	}
	if n < 10 {
		return n
	}
	return n%10 + DigitSum(n/10)
}

// Power returns base^exp by exp multiplications. Negative exponents invert.
func Power(base float64, exp int) float64 {
	if exp == 0 {
		return 1
	}
	if exp < 0 {
		return 1 / Power(base, -exp)
	}
	return base * Power(base, exp-1)
}

// SumList adds head to the sum of the tail.
func SumList(values []int) int {
	if len(values) == 0 {
		return 0
	}
	return values[0] + SumList(values[1:])
}

// Reverse reverses s one rune at a time.
func Reverse(s string) string {
	runes := []rune(s)
	if len(runes) <= 1 {
		return s
	}
	return Reverse(string(runes[1:])) + string(runes[0])
}

// IsPalindrome compares the outer characters and recurses inward.
func IsPalindrome(s string) bool {
	runes := []rune(s)
	if len(runes) <= 1 {
		return true
	}
	if runes[0] != runes[len(runes)-1] {
		return false
	}
	return IsPalindrome(string(runes[1 : len(runes)-1]))
}

// TreeNode is a binary search tree node.
type TreeNode struct {
	Value       int
	Left, Right *TreeNode
}

// Insert adds value to the tree rooted at n and returns the root.
func (n *TreeNode) Insert(value int) *TreeNode {
	if n == nil {
		return &TreeNode{Value: value}
	}
	if value < n.Value {
		n.Left = n.Left.Insert(value)
	} else {
		n.Right = n.Right.Insert(value)
	}
	return n
}

// InOrder visits left subtree, node, right subtree.
func (n *TreeNode) InOrder(visit func(int)) {
	if n == nil {
		return
	}
	n.Left.InOrder(visit)
	visit(n.Value)
	n.Right.InOrder(visit)
}

// Height is the number of nodes on the longest root-to-leaf path.
func (n *TreeNode) Height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.Left.Height(), n.Right.Height())
}

// Count returns the number of nodes.
func (n *TreeNode) Count() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Count() + n.Right.Count()
}

// NestedDepth returns how deeply v nests []any values. A non-list is depth
// 0, an empty list depth 1.
func NestedDepth(v any) int {
	list, ok := v.([]any)
	if !ok {
		return 0
	}
	deepest := 0
	for _, item := range list {
		deepest = max(deepest, NestedDepth(item))
	}
	return 1 + deepest
}

// Flatten returns every non-list value of v in order.
func Flatten(v any) []any {
	list, ok := v.([]any)
	if !ok {
		return []any{v}
	}
	var out []any
	for _, item := range list {
		out = append(out, Flatten(item)...)
	}
	return out
}

// Cell is a maze coordinate.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Maze cell values.
const (
	Open    = 0
	Wall    = 1
	Visited = 2
)

// directions is the exploration order: down, up, right, left.
var directions = []Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// SolveMaze looks for a path from start to target through Open cells of
// grid. A cell is marked Visited before its neighbours are explored and
// reset to Open afterwards whether or not a path was found, so the grid is
// unchanged when SolveMaze returns. Exploration stops at the first
// neighbour that reaches the target. The returned path runs from start to
// target.
func SolveMaze(grid [][]int, start, target Cell) ([]Cell, bool) {
	var path []Cell
	if !solve(grid, start, target, &path) {
		return nil, false
	}
	return path, true
}

func solve(grid [][]int, at, target Cell, path *[]Cell) bool {
	if at.Row < 0 || at.Row >= len(grid) || at.Col < 0 || at.Col >= len(grid[at.Row]) {
		return false
	}
	if grid[at.Row][at.Col] != Open {
		return false
	}

	*path = append(*path, at)
	if at == target {
		return true
	}

	grid[at.Row][at.Col] = Visited
	found := false
	for _, d := range directions {
		if solve(grid, Cell{at.Row + d.Row, at.Col + d.Col}, target, path) {
			found = true
			break
		}
	}
	grid[at.Row][at.Col] = Open

	if !found {
		*path = (*path)[:len(*path)-1]
	}
	return found
}

// Permutations returns every ordering of s's runes, choosing each rune as
// the head in turn.
func Permutations(s string) []string {
	runes := []rune(s)
	if len(runes) <= 1 {
		return []string{s}
	}
	var out []string
	for i, head := range runes {
		rest := string(runes[:i]) + string(runes[i+1:])
		for _, tail := range Permutations(rest) {
			out = append(out, string(head)+tail)
		}
	}
	return out
}

// Hanoi moves n disks from one peg to another and reports each move. It
// returns the number of moves, always 2^n - 1.
func Hanoi(n int, from, to, via string, move func(disk int, from, to string)) int {
	if n == 0 {
		return 0
	}
	moves := Hanoi(n-1, from, via, to, move)
	if move != nil {
		move(n, from, to)
	}
	moves++
	return moves + Hanoi(n-1, via, to, from, move)
}

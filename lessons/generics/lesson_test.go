package generics

import (
	"testing"

	"github.com/GoCodeAlone/demokit/internal/testutil"
)

func TestLessonTranscript(t *testing.T) {
	t.Parallel()
	out := testutil.Transcript(t, New())

	testutil.AssertStepCount(t, out, New())
	testutil.AssertInOrder(t, out,
		"Box(42) holds an int, Box(#42) holds a string",
		"Pair (age, 36) swapped is (36, age)",
		"Peek: c, size 3",
		"Popped: [c, b, a]",
		"Pop on empty stack: ok=false",
		`Get("a") = 3`,
		`Get("missing") = 0, found=false`,
		"Keys: [a, b]",
		"  - evicted b=2",
		"Keys (least recent first): [a, c]",
		"b still cached: false",
		"Ints in order: [20 30 40 50 60 70 80]",
		"Contains 60: true, contains 65: false",
		"Words in order: [apple fig pear]",
		"Users: 2, products: 3",
		"Found Bob <bob@example.com>",
		"Products over $100: [Laptop, Monitor]",
		"Deleted Mouse: true, products left: 2",
		"Lookup of an unknown ID: found=false",
		"Max(3, 9, 4) = 9",
		"Min(2.5, -1, 7) = -1",
		`Max("pear", "apple", "zebra") = zebra`,
		"SortedCopy: [a b c], input still [c a b]",
		"  - welcome email to ada@example.com",
		"  - audit: user Ada registered",
		"Delivered to 2 subscriber(s)",
		"  - order A-1 total $42.50",
		"Malformed payload rejected: delivered=0, error=true",
		"No subscribers for user.deleted: delivered=0",
		"Kinds: [api, user]",
		"api: 200 ok",
		"Error: invalid status 42: not an HTTP status",
		`Error: unsupported type: data kind "api as generics.User"`,
		`Error: unsupported type: data kind "xml"`,
		"Status: idle",
		"Status: loading...",
		"Status: loaded {200 ok}",
		"Status: failed: timeout",
		`Error: invalid status "failure": not loading`,
		"History: [idle, loading, failure]",
	)
}

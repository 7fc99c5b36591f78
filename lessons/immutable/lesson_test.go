package immutable

import (
	"testing"

	"github.com/GoCodeAlone/demokit/internal/testutil"
)

func TestLessonTranscript(t *testing.T) {
	t.Parallel()
	out := testutil.Transcript(t, New())

	testutil.AssertStepCount(t, out, New())
	testutil.AssertInOrder(t, out,
		"p = (1, 2), translated = (4, 6), scaled = (10, 20)",
		"p unchanged: true",
		"Distance p to translated: 5",
		"Price: $1,999.99",
		"Tax:   $160.00",
		"Total: $2,159.99",
		"Price afterwards: $1,999.99",
		`Error: invalid currency "EUR": cannot combine with USD`,
		"Error: invalid amount -5: must not be negative",
		`Error: unsupported type: currency "XYZ"`,
		"Original: Ada, 36 [math]",
		"Updated:  Ada, 37 [math, code]",
		"Error: invalid age -1: must be between 0 and 150",
		"Original after failed update: Ada, 36 [math]",
		"Changed the copy: [hacked code]",
		"Person still has: [math code]",
		"As YAML:",
		"  theme: dark\n  font_size: 16\n  notifications: true\n  languages:",
		`As JSON: {"theme":"dark","font_size":16,"notifications":true,"languages":["en","fr"]}`,
		"Defaults untouched: theme light, font size 14",
		`Parsed over defaults: {"theme":"system","font_size":12,"notifications":true,"languages":["en"]}`,
		"Unknown key rejected: true",
		"Error: invalid font size 100: must be between 8 and 72",
		`Error: unsupported type: theme "neon"`,
	)
}

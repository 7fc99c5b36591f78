package mixins

import (
	"testing"

	"github.com/GoCodeAlone/demokit/internal/testutil"
)

func TestLessonTranscript(t *testing.T) {
	t.Parallel()
	out := testutil.Transcript(t, New())

	testutil.AssertStepCount(t, out, New())
	testutil.AssertInOrder(t, out,
		"Donald flies up to 1,200 m",
		"Donald dives down to 2 m",
		"Donald waddles on 2 legs",
		"Donald: [fly, swim, walk]",
		"Pingu: [swim, walk]",
		"Boeing 747: [fly]",
		"  - Pingu cannot fly",
		"  - Boeing 747 flies up to 12,500 m",
		"Duck.Describe picks Flying: Donald is a flyer",
		"The other implementations stay reachable: Donald is a swimmer; Donald is a walker",
		"Penguin.Describe: Pingu is a swimmer and a walker",
		"Sorted: $5.00, $19.99, $19.99, $1,250.50",
		"Most expensive: $1,250.50",
		"$19.99 > $5.00: true",
		"$19.99 == $19.99: true",
		"$19.99 between $10.00 and $20.00: true",
		"Boeing 747 flies up to 12,500 m",
		"Error: Boeing 747 is already on the ground",
		"  - [Boeing 747] took off",
		"  - [Boeing 747] landed",
	)
}

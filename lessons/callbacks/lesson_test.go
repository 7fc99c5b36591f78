package callbacks

import (
	"testing"

	"github.com/GoCodeAlone/demokit/internal/testutil"
)

func TestLessonTranscript(t *testing.T) {
	t.Parallel()
	out := testutil.Transcript(t, New())

	testutil.AssertStepCount(t, out, New())
	testutil.AssertInOrder(t, out,
		"Callback received: order #1001 with 2 item(s) is complete",
		"Doubled: [2 4 6 8]",
		"Squared: [1 4 9 16]",
		"Requested users 1, 2 and 9; waiting for callbacks...",
		"User 2 (Grace Hopper) loaded at 200ms",
		"User lookup finished at 500ms: not found",
		"User 1 (Ada Lovelace) loaded at 800ms",
		"Handlers on 'message': 2",
		"[logger] received: Hello, callbacks!",
		"[notifier] new message: Hello, callbacks!",
		"Emitted 'unused' to 0 handler(s): nothing happened",
		"[inventory] reserving stock for order #1002",
		"Handler failed on 'order': payment gateway down",
		"[email] confirmation sent for order #1002",
		"2 of 3 handlers completed",
		"100 / 4 = 25",
		"Caught error: cannot divide by zero",
		"The program keeps running after the failed callback",
		"Fetching https://api.example.com/posts/1 ...",
		"Request sent, response pending: true",
		`onSuccess: status 200, data {"method":"GET","url":"https://api.example.com/posts/1"}`,
		"Form 1: valid, submitting",
		"Form 2: rejected: username is required; email must be a valid email; password must be at least 8 characters",
		"download finished after 100ms",
		"parse finished after 200ms",
		"store finished after 300ms",
		"All stages complete",
	)
}

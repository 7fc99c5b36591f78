package factorymethod

import (
	"testing"

	"github.com/GoCodeAlone/demokit/internal/testutil"
)

func TestLessonTranscript(t *testing.T) {
	t.Parallel()
	out := testutil.Transcript(t, New())

	testutil.AssertStepCount(t, out, New())
	testutil.AssertInOrder(t, out,
		"Windows dialog:",
		"  - Dialog with [ Windows button ]",
		"  - Windows click: close dialog",
		"Web dialog:",
		"  - Dialog with <button>HTML button</button>",
		"Channels: [email, push, sms]",
		"  - Email to ada@example.com: Your order has shipped",
		"  - SMS to +1-555-0100: Your order has sh...",
		"  - Push to device device-42: YOUR ORDER HAS SHIPPED",
		`Error: unsupported type: notification channel "pigeon"`,
		"Channels: [email, push, slack, sms]",
		"Slack message in #deploys: v2.1 is live",
		"  - Truck delivers 20 pallets by road (500 km, cost 600.00)",
		"  - Ship delivers 20 pallets by sea (500 km, cost 200.00)",
		"  - Plane delivers 20 pallets by air (500 km, cost 2250.00)",
		`Error: unsupported type: transport mode "rail"`,
	)
}

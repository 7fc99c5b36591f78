package factorymethod

import (
	"context"

	"github.com/GoCodeAlone/demokit"
)

// Lesson is the factory method demonstration.
type Lesson struct{}

// New returns the lesson.
func New() demokit.Lesson { return Lesson{} }

func (Lesson) Name() string  { return "factorymethod" }
func (Lesson) Title() string { return "Factory Method Pattern" }

func (l Lesson) Steps() []demokit.Step {
	return []demokit.Step{
		{Title: "Dialogs decide which button to create", Run: l.dialogs},
		{Title: "Notifications chosen by tag", Run: l.notifications},
		{Title: "Unknown notification channel", Run: l.unknownChannel},
		{Title: "Registering a new channel", Run: l.register},
		{Title: "Logistics and transports", Run: l.logistics},
	}
}

func (Lesson) dialogs(_ context.Context, r *demokit.Runner) error {
	for _, d := range []struct {
		name    string
		creator ButtonCreator
	}{
		{"Windows", WindowsDialog{}},
		{"Web", WebDialog{}},
	} {
		r.Say("%s dialog:", d.name)
		for _, line := range RenderDialog(d.creator) {
			r.Bullet("%s", line)
		}
	}
	return nil
}

func (Lesson) notifications(_ context.Context, r *demokit.Runner) error {
	factory := NewNotificationFactory()
	r.List("Channels", factory.Channels())

	sends := []struct{ tag, to string }{
		{"email", "ada@example.com"},
		{"SMS", "+1-555-0100"},
		{"push", "device-42"},
	}
	for _, s := range sends {
		n, err := factory.Create(s.tag)
		if err != nil {
			return err
		}
		r.Bullet("%s", n.Send(s.to, "Your order has shipped"))
	}
	return nil
}

func (Lesson) unknownChannel(_ context.Context, r *demokit.Runner) error {
	_, err := NewNotificationFactory().Create("pigeon")
	return err
}

type slackNotification struct{}

func (slackNotification) Channel() string { return "slack" }
func (slackNotification) Send(to, message string) string {
	return "Slack message in #" + to + ": " + message
}

func (Lesson) register(_ context.Context, r *demokit.Runner) error {
	factory := NewNotificationFactory()
	factory.Register("slack", func() Notification { return slackNotification{} })
	r.List("Channels", factory.Channels())

	n, err := factory.Create("slack")
	if err != nil {
		return err
	}
	r.Say("%s", n.Send("deploys", "v2.1 is live"))
	return nil
}

func (Lesson) logistics(_ context.Context, r *demokit.Runner) error {
	for _, mode := range []string{"road", "sea", "air", "rail"} {
		l, err := LogisticsFor(mode)
		if err != nil {
			r.Fail(err)
			continue
		}
		r.Bullet("%s", PlanDelivery(l, "20 pallets", 500))
	}
	return nil
}

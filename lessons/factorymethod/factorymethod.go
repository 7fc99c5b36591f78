// Package factorymethod shows the factory method pattern: shared logic
// written against an interface whose implementations decide which concrete
// product to create.
package factorymethod

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/GoCodeAlone/demokit"
)

// Button is the product a Dialog creates.
type Button interface {
	Render() string
	OnClick(action string) string
}

type windowsButton struct{}

func (windowsButton) Render() string { return "[ Windows button ]" }
func (windowsButton) OnClick(action string) string {
	return "Windows click: " + action
}

type htmlButton struct{}

func (htmlButton) Render() string { return "<button>HTML button</button>" }
func (htmlButton) OnClick(action string) string {
	return "browser event: " + action
}

// ButtonCreator is the factory method every dialog supplies.
type ButtonCreator interface {
	CreateButton() Button
}

// WindowsDialog creates native buttons.
type WindowsDialog struct{}

func (WindowsDialog) CreateButton() Button { return windowsButton{} }

// WebDialog creates HTML buttons.
type WebDialog struct{}

func (WebDialog) CreateButton() Button { return htmlButton{} }

// RenderDialog is the shared logic: it never names a concrete button.
func RenderDialog(c ButtonCreator) []string {
	ok := c.CreateButton()
	return []string{
		"Dialog with " + ok.Render(),
		ok.OnClick("close dialog"),
	}
}

// Notification is the product of NotificationFactory.
type Notification interface {
	Channel() string
	Send(to, message string) string
}

type emailNotification struct{}

func (emailNotification) Channel() string { return "email" }
func (emailNotification) Send(to, message string) string {
	return fmt.Sprintf("Email to %s: %s", to, message)
}

type smsNotification struct{}

func (smsNotification) Channel() string { return "sms" }
func (smsNotification) Send(to, message string) string {
	if len(message) > 20 {
		message = message[:17] + "..."
	}
	return fmt.Sprintf("SMS to %s: %s", to, message)
}

type pushNotification struct{}

func (pushNotification) Channel() string { return "push" }
func (pushNotification) Send(to, message string) string {
	return fmt.Sprintf("Push to device %s: %s", to, strings.ToUpper(message))
}

// NotificationFactory maps channel tags to constructors.
type NotificationFactory struct {
	mu    sync.RWMutex
	ctors map[string]func() Notification
}

// NewNotificationFactory knows email, sms and push.
func NewNotificationFactory() *NotificationFactory {
	return &NotificationFactory{ctors: map[string]func() Notification{
		"email": func() Notification { return emailNotification{} },
		"sms":   func() Notification { return smsNotification{} },
		"push":  func() Notification { return pushNotification{} },
	}}
}

// Register adds or replaces the constructor for tag.
func (f *NotificationFactory) Register(tag string, ctor func() Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ctors[strings.ToLower(tag)] = ctor
}

// Create returns the notification for tag, or an unsupported-type error
// naming the tag.
func (f *NotificationFactory) Create(tag string) (Notification, error) {
	f.mu.RLock()
	ctor, ok := f.ctors[strings.ToLower(tag)]
	f.mu.RUnlock()

	if !ok {
		return nil, demokit.UnsupportedType("notification channel", tag)
	}
	return ctor(), nil
}

// Channels lists the known tags in sorted order.
func (f *NotificationFactory) Channels() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	tags := make([]string, 0, len(f.ctors))
	for tag := range f.ctors {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Transport is the product of Logistics.
type Transport interface {
	Deliver(cargo string) string
	CostPerKm() float64
}

type truck struct{}

func (truck) Deliver(cargo string) string { return "Truck delivers " + cargo + " by road" }
func (truck) CostPerKm() float64          { return 1.2 }

type ship struct{}

func (ship) Deliver(cargo string) string { return "Ship delivers " + cargo + " by sea" }
func (ship) CostPerKm() float64          { return 0.4 }

type plane struct{}

func (plane) Deliver(cargo string) string { return "Plane delivers " + cargo + " by air" }
func (plane) CostPerKm() float64          { return 4.5 }

// Logistics creates the transport it plans with.
type Logistics interface {
	CreateTransport() Transport
}

type RoadLogistics struct{}

func (RoadLogistics) CreateTransport() Transport { return truck{} }

type SeaLogistics struct{}

func (SeaLogistics) CreateTransport() Transport { return ship{} }

type AirLogistics struct{}

func (AirLogistics) CreateTransport() Transport { return plane{} }

// PlanDelivery is written once for every Logistics.
func PlanDelivery(l Logistics, cargo string, km float64) string {
	t := l.CreateTransport()
	return fmt.Sprintf("%s (%.0f km, cost %.2f)", t.Deliver(cargo), km, t.CostPerKm()*km)
}

// LogisticsFor picks a Logistics by mode.
func LogisticsFor(mode string) (Logistics, error) {
	switch strings.ToLower(mode) {
	case "road":
		return RoadLogistics{}, nil
	case "sea":
		return SeaLogistics{}, nil
	case "air":
		return AirLogistics{}, nil
	default:
		return nil, demokit.UnsupportedType("transport mode", mode)
	}
}

// Package notify implements notification delivery with the Factory Method
// pattern.
//
// A Notifier never names a concrete Notification type. It asks its Creator
// for a fresh Notification on every delivery and hands the message to it.
// Delivery is simulated: each Notification traces what it would have sent
// and reports success.
package notify

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dyluth/creational/internal/trace"
)

// Channel identifies a delivery channel
type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
)

// Channels returns every supported channel in display order
func Channels() []Channel {
	return []Channel{ChannelSMS, ChannelEmail, ChannelPush}
}

// ParseChannel maps a case-insensitive name to a Channel
func ParseChannel(name string) (Channel, error) {
	ch := Channel(strings.ToLower(strings.TrimSpace(name)))
	switch ch {
	case ChannelSMS, ChannelEmail, ChannelPush:
		return ch, nil
	}
	return "", fmt.Errorf("unknown notification channel: %q (must be 'sms', 'email', or 'push')", name)
}

// Notification is the product: one message delivery over one channel
type Notification interface {
	// Send delivers message to recipient and reports whether it succeeded
	Send(message, recipient string) bool

	Channel() Channel

	// ID uniquely identifies this Notification instance
	ID() string
}

// Creator is the factory method: it decides which Notification a Notifier uses
type Creator interface {
	CreateNotification() Notification
}

// Notifier sends messages through whatever Notification its Creator builds
type Notifier struct {
	creator Creator
}

// NewNotifier wraps a Creator
func NewNotifier(c Creator) *Notifier {
	return &Notifier{creator: c}
}

// SendVia creates a fresh Notification and delivers message to recipient with it.
// The return value is the Notification's own result.
func (n *Notifier) SendVia(message, recipient string) bool {
	notification := n.creator.CreateNotification()
	return notification.Send(message, recipient)
}

// CreatorFor returns the Creator for a channel
func CreatorFor(ch Channel, t *trace.Tracer) (Creator, error) {
	switch ch {
	case ChannelSMS:
		return &SMSCreator{Tracer: t}, nil
	case ChannelEmail:
		return &EmailCreator{Tracer: t}, nil
	case ChannelPush:
		return &PushCreator{Tracer: t}, nil
	}
	return nil, fmt.Errorf("no creator registered for channel %q", ch)
}

// SMSCreator creates SMS notifications
type SMSCreator struct {
	Tracer *trace.Tracer
}

func (c *SMSCreator) CreateNotification() Notification {
	return &SMS{delivery: newDelivery(c.Tracer, ChannelSMS)}
}

// EmailCreator creates Email notifications
type EmailCreator struct {
	Tracer *trace.Tracer
}

func (c *EmailCreator) CreateNotification() Notification {
	return &Email{delivery: newDelivery(c.Tracer, ChannelEmail)}
}

// PushCreator creates Push notifications
type PushCreator struct {
	Tracer *trace.Tracer
}

func (c *PushCreator) CreateNotification() Notification {
	return &Push{delivery: newDelivery(c.Tracer, ChannelPush)}
}

// delivery holds what every concrete Notification shares
type delivery struct {
	id      string
	channel Channel
	tracer  *trace.Tracer
}

func newDelivery(t *trace.Tracer, ch Channel) delivery {
	return delivery{
		id:      uuid.New().String(),
		channel: ch,
		tracer:  t.Named("notify").Named(string(ch)),
	}
}

func (d delivery) ID() string       { return d.id }
func (d delivery) Channel() Channel { return d.channel }

func (d delivery) trace(kind, message, recipient string) {
	d.tracer.Info(fmt.Sprintf("Sending %s to %s: %s", kind, recipient, message),
		trace.F("channel", string(d.channel)),
		trace.F("recipient", recipient),
		trace.F("id", d.id),
	)
}

// SMS delivers a text message
type SMS struct{ delivery }

func (n *SMS) Send(message, recipient string) bool {
	n.trace("SMS", message, recipient)
	return true
}

// Email delivers an email
type Email struct{ delivery }

func (n *Email) Send(message, recipient string) bool {
	n.trace("Email", message, recipient)
	return true
}

// Push delivers a push notification
type Push struct{ delivery }

func (n *Push) Send(message, recipient string) bool {
	n.trace("Push notification", message, recipient)
	return true
}

// Package notifier delivers formatted signal messages to chat channels.
package notifier

import (
	"context"
	"errors"
)

// Notifier sends a text message to one delivery channel.
type Notifier interface {
	Send(ctx context.Context, text string) error
	Name() string
}

// Noop discards messages; used when no channel is configured.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (n *Noop) Send(_ context.Context, _ string) error { return nil }
func (n *Noop) Name() string                           { return "noop" }

// Multi fans a message out to several channels. Every channel is attempted;
// the errors are joined.
type Multi struct {
	targets []Notifier
}

func NewMulti(targets ...Notifier) *Multi {
	return &Multi{targets: targets}
}

func (m *Multi) Send(ctx context.Context, text string) error {
	var errs []error
	for _, t := range m.targets {
		if err := t.Send(ctx, text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Multi) Name() string { return "multi" }

package notifier

import "context"

// Notifier pushes a formatted advice report to an external channel.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// NoopNotifier is used when no notification channel is configured.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier { return &NoopNotifier{} }

func (n *NoopNotifier) Notify(_ context.Context, _ string) error { return nil }

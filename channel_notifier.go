package tether

import (
	"errors"
	"sync"
)

// ChannelNotifier wraps an existing event channel as a Notifier.
// Useful for testing and for custom sources that already produce events.
// Every subscription reads from the same channel regardless of the directory.
type ChannelNotifier struct {
	events <-chan Event
	errors <-chan error

	mu     sync.Mutex
	active int
	fail   error
}

// NewChannelNotifier creates a ChannelNotifier forwarding events.
func NewChannelNotifier(events <-chan Event) *ChannelNotifier {
	return &ChannelNotifier{events: events}
}

// WithErrors sets a channel whose errors are surfaced by every subscription.
func (n *ChannelNotifier) WithErrors(errs <-chan error) *ChannelNotifier {
	n.errors = errs
	return n
}

// FailWith makes subsequent Subscribe calls fail with err.
func (n *ChannelNotifier) FailWith(err error) *ChannelNotifier {
	n.mu.Lock()
	n.fail = err
	n.mu.Unlock()
	return n
}

// Subscribe returns a subscription over the wrapped channel.
func (n *ChannelNotifier) Subscribe(_ string) (Subscription, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.fail != nil {
		return nil, n.fail
	}
	if n.events == nil {
		return nil, errors.New("channel notifier has no event channel")
	}
	n.active++
	return &channelSubscription{notifier: n}, nil
}

// Active returns the number of subscriptions that have not been closed.
func (n *ChannelNotifier) Active() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}

type channelSubscription struct {
	notifier *ChannelNotifier
	once     sync.Once
}

func (s *channelSubscription) Events() <-chan Event { return s.notifier.events }
func (s *channelSubscription) Errors() <-chan error { return s.notifier.errors }

func (s *channelSubscription) Close() error {
	s.once.Do(func() {
		s.notifier.mu.Lock()
		s.notifier.active--
		s.notifier.mu.Unlock()
	})
	return nil
}

var _ Notifier = (*ChannelNotifier)(nil)

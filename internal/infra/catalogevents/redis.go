package catalogevents

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Event is published whenever an instance rebuilds its index from the catalog.
type Event struct {
	Origin string    `json:"origin"`
	At     time.Time `json:"at"`
}

type publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

type RedisNotifier struct {
	client  publisher
	channel string
	origin  string
	clock   clock.Clock
}

func NewRedisNotifier(client *redis.Client, channel, origin string, clk clock.Clock) *RedisNotifier {
	return newRedisNotifier(client, channel, origin, clk)
}

func newRedisNotifier(client publisher, channel, origin string, clk clock.Clock) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel, origin: origin, clock: clk}
}

func (n *RedisNotifier) NotifyChanged(ctx context.Context) error {
	data, err := json.Marshal(Event{Origin: n.origin, At: n.clock.Now().UTC()})
	if err != nil {
		return errs.Wrap(err, "marshal catalog event")
	}
	if err := n.client.Publish(ctx, n.channel, data).Err(); err != nil {
		return errs.Wrapf(err, "publish to %s", n.channel)
	}
	return nil
}

// NoopNotifier is used when no Redis is configured.
type NoopNotifier struct{}

func (NoopNotifier) NotifyChanged(context.Context) error { return nil }

// Listener turns catalog events from other instances into change signals.
type Listener struct {
	client  *redis.Client
	channel string
	origin  string
	logger  *slog.Logger
}

func NewListener(client *redis.Client, channel, origin string, logger *slog.Logger) *Listener {
	return &Listener{client: client, channel: channel, origin: origin, logger: logger}
}

// Changes subscribes to the channel until ctx is done. Signals coalesce: a
// burst of events while the consumer is busy yields one pending signal.
func (l *Listener) Changes(ctx context.Context) <-chan struct{} {
	sub := l.client.Subscribe(ctx, l.channel)
	out := make(chan struct{}, 1)

	go func() {
		defer close(out)
		defer sub.Close()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				if !fromPeer(msg.Payload, l.origin, l.logger) {
					continue
				}
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()

	return out
}

func fromPeer(payload, origin string, logger *slog.Logger) bool {
	var ev Event
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		logger.Warn("ignoring malformed catalog event", "error", err)
		return false
	}
	return ev.Origin != origin
}

// Package notifier turns the order event stream into operator
// notifications. Delivery is decoupled from the bot's request path: the bot
// publishes, this worker consumes, dedups and sends.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/archignome/tgboy/internal/events"
	"github.com/archignome/tgboy/internal/logging"
	"github.com/archignome/tgboy/internal/orders"
	"github.com/archignome/tgboy/internal/present"
	"github.com/archignome/tgboy/internal/redisx"
)

// Sender delivers a text message to a chat. The Telegram client satisfies
// this in production.
type Sender interface {
	Send(chatID int64, text string) error
}

type Service struct {
	Redis          *redis.Client
	Sender         Sender
	OperatorChatID int64
	ServiceName    string
}

// HandleOrderEvent is wired as the consumer handler for both order topics.
func (s *Service) HandleOrderEvent(ctx context.Context, m kafkago.Message) error {
	log := logging.New("notifier")

	var env events.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}

	// dedup on event_id so redelivery never double-pings the operator;
	// redis being down only costs a duplicate ping
	if s.Redis != nil {
		dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
		if exists, _ := redisx.Exists(ctx, s.Redis, dkey); exists {
			return nil
		}
		_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()
	}

	var text string
	switch env.EventType {
	case events.EventOrderCreated:
		p, err := events.UnwrapPayload[events.OrderCreatedPayload](env.Payload)
		if err != nil {
			return err
		}
		text = present.OperatorNewOrder(orders.Order{
			ID:         p.OrderID,
			UserID:     p.UserID,
			Username:   p.Username,
			ConfigID:   p.ConfigID,
			ConfigName: p.ConfigName,
			PriceCents: p.PriceCents,
			Status:     orders.ParseStatus(p.Status),
		})
	case events.EventOrderStatusChanged:
		p, err := events.UnwrapPayload[events.OrderStatusChangedPayload](env.Payload)
		if err != nil {
			return err
		}
		text = present.OperatorStatusChanged(orders.Order{
			ID:       p.OrderID,
			UserID:   p.UserID,
			Username: p.Username,
			Status:   orders.ParseStatus(p.Status),
		})
	default:
		return nil // ignore unknown event types
	}

	if s.OperatorChatID == 0 {
		log.Warn("operator chat id not configured, dropping notification", "event", env.EventType)
		return nil
	}
	if err := s.Sender.Send(s.OperatorChatID, text); err != nil {
		return fmt.Errorf("send operator notification: %w", err)
	}
	return nil
}

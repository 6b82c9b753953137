package events

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/archignome/tgboy/internal/logging"
)

// Producer publishes through a buffered inbox so callers never block on the
// broker. Close flushes whatever is queued before the writer goes away.
type Producer struct {
	w       *kafka.Writer
	inbox   chan kafka.Message
	closeCh chan struct{}
}

func NewProducer(brokers []string, topic string, buf int) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        true,
		},
		inbox:   make(chan kafka.Message, buf),
		closeCh: make(chan struct{}),
	}
}

func (p *Producer) Start(ctx context.Context) {
	log := logging.New("events.producer")
	go func() {
		for {
			select {
			case <-ctx.Done():
				// drain whatever is already queued, then stop
				for {
					select {
					case m, ok := <-p.inbox:
						if !ok {
							_ = p.w.Close()
							close(p.closeCh)
							return
						}
						_ = p.w.WriteMessages(context.Background(), m)
					default:
						_ = p.w.Close()
						close(p.closeCh)
						return
					}
				}
			case m, ok := <-p.inbox:
				if !ok {
					_ = p.w.Close()
					close(p.closeCh)
					return
				}
				if err := p.w.WriteMessages(context.Background(), m); err != nil {
					log.Error("publish failed", "topic", p.w.Topic, "err", err)
				}
			}
		}
	}()
}

// PublishEnvelope serializes and enqueues an envelope keyed by its order id.
func (p *Producer) PublishEnvelope(ev Envelope) {
	p.Publish(PartitionKey(ev.CorrelationID), MustMarshal(ev),
		kafka.Header{Key: "x-event-type", Value: []byte(ev.EventType)},
		kafka.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func (p *Producer) Publish(key, value []byte, headers ...kafka.Header) {
	p.inbox <- kafka.Message{
		Key:     key,
		Value:   value,
		Time:    time.Now(),
		Headers: headers,
	}
}

// Close stops accepting messages; the writer loop flushes the rest.
func (p *Producer) Close() { close(p.inbox) }

// WaitClosed blocks until the writer loop has drained and exited.
func (p *Producer) WaitClosed() { <-p.closeCh }

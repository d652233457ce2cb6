// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/afterquery/assessment-broker/monitoring"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// postgres rejects NOTIFY payloads of 8000 bytes or more
const maxNotifyPayload = 7999

type PostgreSQLMessage struct {
	ID        string               `json:"id"`
	Channel   shared.PubSubChannel `json:"topic"`
	Payload   map[string]any       `json:"payload"`
	Timestamp time.Time            `json:"timestamp"`
	SenderID  string               `json:"sender_id,omitempty"`
}

func (m PostgreSQLMessage) GetChannel() shared.PubSubChannel {
	return m.Channel
}

func (m PostgreSQLMessage) GetPayload() map[string]any {
	return m.Payload
}

// notifier is the part of the pool used for publishing. *pgxpool.Pool and
// pgxmock pools both satisfy it.
type notifier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type listeningConnection struct {
	conn        *pgxpool.Conn
	subscribers []chan map[string]any
	cancel      context.CancelFunc
}

// PostgreSQLBroker implements shared.PubSubBroker on top of LISTEN/NOTIFY.
type PostgreSQLBroker struct {
	pool     *pgxpool.Pool
	notifier notifier

	subscribers  map[shared.PubSubChannel]*listeningConnection
	subscribeMux sync.RWMutex
	wg           sync.WaitGroup

	ID                       string
	shouldReceiveOwnMessages bool
}

func NewPostgreSQLBroker(pool *pgxpool.Pool) *PostgreSQLBroker {
	return &PostgreSQLBroker{
		pool:        pool,
		notifier:    pool,
		subscribers: make(map[shared.PubSubChannel]*listeningConnection),
		ID:          uuid.New().String(),
	}
}

func newPublishOnlyBroker(n notifier) *PostgreSQLBroker {
	return &PostgreSQLBroker{
		notifier:    n,
		subscribers: make(map[shared.PubSubChannel]*listeningConnection),
		ID:          uuid.New().String(),
	}
}

func (b *PostgreSQLBroker) SetShouldReceiveOwnMessages(should bool) {
	b.shouldReceiveOwnMessages = should
}

func (b *PostgreSQLBroker) Publish(ctx context.Context, message shared.PubSubMessage) error {
	topic := message.GetChannel()

	pgMessage := PostgreSQLMessage{
		ID:        uuid.New().String(),
		Channel:   topic,
		Payload:   message.GetPayload(),
		Timestamp: time.Now().UTC(),
		SenderID:  b.ID,
	}

	messageJSON, err := json.Marshal(pgMessage)
	if err != nil {
		return fmt.Errorf("failed to marshal PostgreSQL message: %w", err)
	}
	if len(messageJSON) > maxNotifyPayload {
		return fmt.Errorf("message %s exceeds the notify payload limit (%d bytes)", pgMessage.ID, len(messageJSON))
	}

	// pg_notify takes the payload as a bind parameter, no quoting needed
	if _, err := b.notifier.Exec(ctx, "SELECT pg_notify($1, $2)", string(topic), string(messageJSON)); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	slog.Debug("message published", "topic", topic, "messageID", pgMessage.ID)
	return nil
}

func (b *PostgreSQLBroker) Subscribe(topic shared.PubSubChannel) (<-chan map[string]any, error) {
	if b.pool == nil {
		return nil, fmt.Errorf("broker %s can only publish", b.ID)
	}

	b.subscribeMux.Lock()
	defer b.subscribeMux.Unlock()

	ch := make(chan map[string]any, 100)

	if existing, ok := b.subscribers[topic]; ok {
		existing.subscribers = append(existing.subscribers, ch)
		return ch, nil
	}

	acquireCtx, cancelAcquire := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelAcquire()
	conn, err := b.pool.Acquire(acquireCtx)
	if err != nil {
		close(ch)
		return nil, fmt.Errorf("failed to acquire connection for listening: %w", err)
	}

	if _, err := conn.Exec(context.Background(), "LISTEN "+pq.QuoteIdentifier(string(topic))); err != nil {
		conn.Release()
		close(ch)
		return nil, fmt.Errorf("failed to listen on topic %s: %w", topic, err)
	}

	listenCtx, cancel := context.WithCancel(context.Background())
	lc := &listeningConnection{
		conn:        conn,
		subscribers: []chan map[string]any{ch},
		cancel:      cancel,
	}
	b.subscribers[topic] = lc

	b.wg.Go(func() {
		b.processMessages(listenCtx, topic, conn)
	})

	return ch, nil
}

func (b *PostgreSQLBroker) processMessages(ctx context.Context, topic shared.PubSubChannel, conn *pgxpool.Conn) {
	defer conn.Release()
	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() == nil {
				monitoring.Alert("could not listen for notifications from PostgreSQL broker", err)
			}
			return
		}
		if notification == nil || notification.Channel != string(topic) {
			continue
		}

		var message PostgreSQLMessage
		if err := json.Unmarshal([]byte(notification.Payload), &message); err != nil {
			slog.Error("failed to unmarshal message", "err", err, "payload", notification.Payload)
			continue
		}

		if message.SenderID == b.ID && !b.shouldReceiveOwnMessages {
			continue
		}

		b.subscribeMux.RLock()
		lc, exists := b.subscribers[topic]
		var subscribers []chan map[string]any
		if exists {
			subscribers = lc.subscribers
		}
		b.subscribeMux.RUnlock()

		for _, subscriber := range subscribers {
			select {
			case subscriber <- message.Payload:
			default:
				slog.Warn("subscriber channel full, dropping message", "topic", topic, "messageID", message.ID)
			}
		}
	}
}

// Close stops all listeners and closes the subscriber channels.
func (b *PostgreSQLBroker) Close() {
	b.subscribeMux.Lock()
	for _, lc := range b.subscribers {
		lc.cancel()
	}
	b.subscribeMux.Unlock()

	b.wg.Wait()

	b.subscribeMux.Lock()
	defer b.subscribeMux.Unlock()
	for topic, lc := range b.subscribers {
		for _, ch := range lc.subscribers {
			close(ch)
		}
		delete(b.subscribers, topic)
	}
}

func (b *PostgreSQLBroker) IsHealthy(ctx context.Context) bool {
	if b.pool == nil {
		return true
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := b.pool.Ping(pingCtx); err != nil {
		slog.Error("broker pool is not healthy", "err", err)
		return false
	}
	return true
}

var _ shared.PubSubBroker = (*PostgreSQLBroker)(nil)

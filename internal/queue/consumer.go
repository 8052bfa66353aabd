// Package queue contains the background consumer that listens to the
// roster.committed queue and appends one line per commit to logs/roster.log.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartRosterConsumer connects to RabbitMQ, declares the roster.committed
// queue (durable) and consumes it until ctx is cancelled.  Broker failures
// are retried with exponential backoff; a message that cannot be handled
// is rejected without requeue so the loop never spins on it.
func StartRosterConsumer(ctx context.Context, url, logDir string) error {
	backoff := time.Second
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("roster-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = consumeLoop(ctx, conn, logDir)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("roster-consumer: consume loop ended: %v; reconnecting", err)
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, logDir string) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("roster-consumer: set QoS failed: %v", err)
	}
	if _, err := ch.QueueDeclare(RosterCommittedQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(RosterCommittedQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := appendToLog(logDir, d.Body); err != nil {
				log.Printf("roster-consumer: handle message failed: %v", err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func appendToLog(logDir string, body []byte) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(logDir, "roster.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	return handleMessage(f, body)
}

// handleMessage decodes a RosterCommittedEvent and writes it to w as one
// human-readable line.
func handleMessage(w io.Writer, body []byte) error {
	var ev RosterCommittedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.RosterID == "" {
		return errors.New("event without roster_id")
	}

	locs := make([]string, 0, len(ev.ByLocation))
	for loc, n := range ev.ByLocation {
		locs = append(locs, fmt.Sprintf("%s=%d", loc, n))
	}
	sort.Strings(locs)

	line := fmt.Sprintf("[%s] Roster committed | roster_id=%s | passengers=%d | paid=%d | pending=%d | temporary=%d | unassigned=%d | empty=%d | locations=[%s]\n",
		ev.CommittedAt, ev.RosterID, ev.Passengers, ev.Paid, ev.Pending,
		ev.TemporaryAssignments, ev.UnassignedPassengers, ev.EmptySeats, strings.Join(locs, ","))
	if _, err := io.WriteString(w, line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

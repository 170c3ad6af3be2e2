package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/bodaroute/bodaroute/internal/models"
	"github.com/lucsky/cuid"
)

// HistoryRecorder applies one completed route's statistics to every
// edge along it and persists the result durably. history.Store
// satisfies it.
type HistoryRecorder interface {
	RecordTraversals(ctx context.Context, edges []models.EdgeKey, delay float64, succeeded bool) error
}

// EventSink publishes domain events to an external stream. Optional;
// producers.SaramaProducer satisfies it.
type EventSink interface {
	WriteMessage(topic string, msg []byte) error
}

// FeedbackLearner closes the learning loop: it turns completed-route
// reports into edge-history updates so future adaptive searches route
// around unreliable roads.
type FeedbackLearner struct {
	network *RoadNetwork
	history HistoryRecorder
	events  EventSink
}

func NewFeedbackLearner(network *RoadNetwork, history HistoryRecorder) *FeedbackLearner {
	return &FeedbackLearner{network: network, history: history}
}

// WithEventSink enables best-effort event publication for each
// recorded completion. Publish failures are logged, never surfaced:
// the durable history write is the operation that matters.
func (l *FeedbackLearner) WithEventSink(sink EventSink) *FeedbackLearner {
	l.events = sink
	return l
}

// feedbackEvent is the JSON payload published per recorded completion.
type feedbackEvent struct {
	EventID   string   `json:"eventId"`
	Timestamp int64    `json:"timestamp"`
	Path      []string `json:"path"`
	Delay     float64  `json:"delay"`
	Succeeded bool     `json:"succeeded"`
}

// RecordCompletion computes the relative delay of a completed route and
// folds it into the history of every edge along the path. The update
// and its durable write happen atomically inside the store: on a
// persistence failure the in-memory statistics are rolled back and the
// error is surfaced to the caller.
//
// The delay is (actual - expected) / expected and may be negative when
// the route ran ahead of the estimate.
func (l *FeedbackLearner) RecordCompletion(ctx context.Context, feedback models.RouteFeedback) error {
	if feedback.ExpectedDuration <= 0 {
		return fmt.Errorf("%w: expected duration must be positive, got %v", ErrInvalidFeedback, feedback.ExpectedDuration)
	}
	if len(feedback.Path) < 2 {
		return fmt.Errorf("%w: path needs at least two nodes, got %d", ErrInvalidFeedback, len(feedback.Path))
	}

	edges := make([]models.EdgeKey, 0, len(feedback.Path)-1)
	for i := 0; i < len(feedback.Path)-1; i++ {
		from, to := feedback.Path[i], feedback.Path[i+1]
		if !l.network.HasEdge(from, to) {
			return fmt.Errorf("%w: %s -> %s is not an edge in the network", ErrInvalidFeedback, from, to)
		}
		edges = append(edges, models.EdgeKey{From: from, To: to})
	}

	delay := (feedback.ActualDuration - feedback.ExpectedDuration) / feedback.ExpectedDuration

	if err := l.history.RecordTraversals(ctx, edges, delay, feedback.Succeeded); err != nil {
		return err
	}

	l.publish(feedback, delay)
	return nil
}

func (l *FeedbackLearner) publish(feedback models.RouteFeedback, delay float64) {
	if l.events == nil {
		return
	}
	payload, err := json.Marshal(feedbackEvent{
		EventID:   cuid.New(),
		Timestamp: time.Now().Unix(),
		Path:      feedback.Path,
		Delay:     delay,
		Succeeded: feedback.Succeeded,
	})
	if err != nil {
		log.Printf("Failed to encode feedback event: %v", err)
		return
	}
	if err := l.events.WriteMessage(models.TopicFeedbackEvents, payload); err != nil {
		log.Printf("Failed to publish feedback event: %v", err)
	}
}

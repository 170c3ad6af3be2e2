package routing

import (
	"context"
	"testing"

	"github.com/bodaroute/bodaroute/internal/history"
	"github.com/bodaroute/bodaroute/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingSink struct {
	topics   []string
	payloads [][]byte
}

func (c *capturingSink) WriteMessage(topic string, msg []byte) error {
	c.topics = append(c.topics, topic)
	c.payloads = append(c.payloads, msg)
	return nil
}

func newTestLearner(t *testing.T) (*FeedbackLearner, *history.Store) {
	t.Helper()
	network, err := NewRoadNetwork(testDefinition())
	require.NoError(t, err)
	store := history.NewVolatile()
	return NewFeedbackLearner(network, store), store
}

func TestRecordCompletion_UpdatesEveryEdgeOnPath(t *testing.T) {
	learner, store := newTestLearner(t)

	// 30 minutes expected, 45 actual: delay 0.5 on both edges.
	err := learner.RecordCompletion(context.Background(), models.RouteFeedback{
		Path:             []string{"a", "b", "d"},
		ActualDuration:   45,
		ExpectedDuration: 30,
		Succeeded:        true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, store.Len())
	for _, key := range []models.EdgeKey{{From: "a", To: "b"}, {From: "b", To: "d"}} {
		rec, ok := store.Lookup(key.From, key.To)
		require.True(t, ok)
		assert.Equal(t, 1, rec.Samples)
		assert.InDelta(t, 0.5, rec.AverageDelay, 1e-9)
		assert.Zero(t, rec.Failures)
	}
}

func TestRecordCompletion_FailureRateGrowsAndStaysBounded(t *testing.T) {
	learner, store := newTestLearner(t)
	ctx := context.Background()

	feedback := models.RouteFeedback{
		Path:             []string{"a", "b"},
		ActualDuration:   40,
		ExpectedDuration: 30,
		Succeeded:        false,
	}
	var lastRate float64
	for i := 0; i < 5; i++ {
		require.NoError(t, learner.RecordCompletion(ctx, feedback))
		rec, ok := store.Lookup("a", "b")
		require.True(t, ok)
		assert.GreaterOrEqual(t, rec.FailureRate, lastRate)
		assert.LessOrEqual(t, rec.FailureRate, 1.0)
		lastRate = rec.FailureRate
	}

	rec, _ := store.Lookup("a", "b")
	assert.Equal(t, 5, rec.Samples)
	assert.InDelta(t, 1.0, rec.FailureRate, 1e-9)
}

func TestRecordCompletion_NegativeDelayForFastRoutes(t *testing.T) {
	learner, store := newTestLearner(t)

	err := learner.RecordCompletion(context.Background(), models.RouteFeedback{
		Path:             []string{"a", "c"},
		ActualDuration:   15,
		ExpectedDuration: 30,
		Succeeded:        true,
	})
	require.NoError(t, err)

	rec, ok := store.Lookup("a", "c")
	require.True(t, ok)
	assert.InDelta(t, -0.5, rec.AverageDelay, 1e-9)
}

func TestRecordCompletion_RejectsInvalidFeedback(t *testing.T) {
	learner, store := newTestLearner(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		feedback models.RouteFeedback
	}{
		{
			name:     "non-positive expected duration",
			feedback: models.RouteFeedback{Path: []string{"a", "b"}, ActualDuration: 10, ExpectedDuration: 0},
		},
		{
			name:     "single node path",
			feedback: models.RouteFeedback{Path: []string{"a"}, ActualDuration: 10, ExpectedDuration: 10},
		},
		{
			name:     "consecutive nodes without an edge",
			feedback: models.RouteFeedback{Path: []string{"b", "a"}, ActualDuration: 10, ExpectedDuration: 10},
		},
		{
			name:     "unknown node on path",
			feedback: models.RouteFeedback{Path: []string{"a", "ghost"}, ActualDuration: 10, ExpectedDuration: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := learner.RecordCompletion(ctx, tt.feedback)
			assert.ErrorIs(t, err, ErrInvalidFeedback)
		})
	}
	// Nothing may be recorded from rejected feedback.
	assert.Zero(t, store.Len())
}

func TestRecordCompletion_PublishesEvent(t *testing.T) {
	learner, _ := newTestLearner(t)
	sink := &capturingSink{}
	learner = learner.WithEventSink(sink)

	err := learner.RecordCompletion(context.Background(), models.RouteFeedback{
		Path:             []string{"a", "b", "d"},
		ActualDuration:   33,
		ExpectedDuration: 30,
		Succeeded:        true,
	})
	require.NoError(t, err)

	require.Len(t, sink.topics, 1)
	assert.Equal(t, models.TopicFeedbackEvents, sink.topics[0])
	assert.Contains(t, string(sink.payloads[0]), `"path":["a","b","d"]`)
}

type failingSink struct{}

func (failingSink) WriteMessage(string, []byte) error {
	return assert.AnError
}

func TestRecordCompletion_SinkFailureIsNotSurfaced(t *testing.T) {
	learner, store := newTestLearner(t)
	learner = learner.WithEventSink(failingSink{})

	err := learner.RecordCompletion(context.Background(), models.RouteFeedback{
		Path:             []string{"a", "b"},
		ActualDuration:   31,
		ExpectedDuration: 30,
		Succeeded:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

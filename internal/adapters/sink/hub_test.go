package sink_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clustertap/internal/adapters/sink"
	"go.trai.ch/clustertap/internal/core/domain"
	"go.trai.ch/clustertap/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func graph(id string, status string) *domain.ClusterGraph {
	return domain.NewClusterGraph(id,
		[]domain.Node{{PersonID: "a", Name: "A"}, {PersonID: "b", Name: "B"}},
		[]domain.Edge{{LowerID: "a", HigherID: "b", Status: status}},
	)
}

func newHub(t *testing.T) (*sink.Hub, *mocks.MockMetrics, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockMetrics := mocks.NewMockMetrics(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return sink.NewHub(mockLogger, mockMetrics), mockMetrics, mockLogger
}

func TestHub_LatestAndDedupe(t *testing.T) {
	hub, mockMetrics, _ := newHub(t)

	_, ok := hub.Latest()
	assert.False(t, ok)

	gomock.InOrder(
		mockMetrics.EXPECT().GraphPushed(false),
		mockMetrics.EXPECT().GraphPushed(true),
		mockMetrics.EXPECT().GraphPushed(false),
	)

	first := graph("1", "PENDING")
	hub.PushGraph(first)
	hub.PushGraph(graph("1", "PENDING"))

	latest, ok := hub.Latest()
	require.True(t, ok)
	assert.Same(t, first, latest, "an equal push does not replace the latest graph")

	changed := graph("1", "MATCH")
	hub.PushGraph(changed)
	latest, _ = hub.Latest()
	assert.Same(t, changed, latest)
}

func TestHub_IgnoresNil(t *testing.T) {
	hub, _, _ := newHub(t)
	hub.PushGraph(nil)
	_, ok := hub.Latest()
	assert.False(t, ok)
}

func TestHub_Subscribe(t *testing.T) {
	hub, mockMetrics, _ := newHub(t)
	mockMetrics.EXPECT().GraphPushed(gomock.Any()).AnyTimes()

	early, cancelEarly := hub.Subscribe()
	defer cancelEarly()

	g1 := graph("1", "PENDING")
	hub.PushGraph(g1)
	assert.Same(t, g1, <-early)

	late, cancelLate := hub.Subscribe()
	assert.Same(t, g1, <-late, "late subscribers receive the latest graph first")
	assert.Equal(t, 2, hub.Subscribers())

	cancelLate()
	cancelLate()
	_, open := <-late
	assert.False(t, open)
	assert.Equal(t, 1, hub.Subscribers())

	g2 := graph("2", "PENDING")
	hub.PushGraph(g2)
	assert.Same(t, g2, <-early)
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub, mockMetrics, mockLogger := newHub(t)
	mockMetrics.EXPECT().GraphPushed(false).Times(sink.DefaultSubscriberBuffer + 1)
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).Times(1)

	_, cancel := hub.Subscribe()
	defer cancel()

	for i := range sink.DefaultSubscriberBuffer + 1 {
		hub.PushGraph(graph("c", string(rune('A'+i))))
	}

	latest, ok := hub.Latest()
	require.True(t, ok)
	assert.Equal(t, string(rune('A'+sink.DefaultSubscriberBuffer)), latest.Edges[0].Status)
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, sink.Fingerprint(graph("1", "PENDING")), sink.Fingerprint(graph("1", "PENDING")))
	assert.NotEqual(t, sink.Fingerprint(graph("1", "PENDING")), sink.Fingerprint(graph("2", "PENDING")))
}

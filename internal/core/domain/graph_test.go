package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clustertap/internal/core/domain"
)

func TestNewClusterGraph(t *testing.T) {
	nodes := []domain.Node{
		{PersonID: "1", Name: "Ada"},
		{PersonID: "", Name: "ghost"},
		{PersonID: "2", Name: "Grace"},
		{PersonID: "1", Name: "duplicate"},
	}
	edges := []domain.Edge{
		{LowerID: "1", HigherID: "2", Status: "PENDING"},
		{LowerID: "1", HigherID: "3", Status: "PENDING"},
		{LowerID: "", HigherID: "2", Status: "REJECTED"},
	}

	g := domain.NewClusterGraph("c1", nodes, edges)

	assert.Equal(t, "c1", g.ID)
	assert.Equal(t, []domain.Node{{PersonID: "1", Name: "Ada"}, {PersonID: "2", Name: "Grace"}}, g.Nodes)
	assert.Equal(t, []domain.Edge{{LowerID: "1", HigherID: "2", Status: "PENDING"}}, g.Edges)
	assert.True(t, g.HasNode("2"))
	assert.False(t, g.HasNode("3"))
}

func TestNewClusterGraph_EmptyEncodesArrays(t *testing.T) {
	data, err := json.Marshal(domain.NewClusterGraph("c1", nil, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "c1", "nodes": [], "edges": []}`, string(data))
}

func TestClusterGraph_OptionalEdgeFields(t *testing.T) {
	g := domain.NewClusterGraph("c1",
		[]domain.Node{{PersonID: "1"}, {PersonID: "2"}},
		[]domain.Edge{{LowerID: "1", HigherID: "2", Status: "PENDING"}},
	)
	data, err := json.Marshal(g.Edges[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"lowerId": "1", "higherId": "2", "status": "PENDING"}`, string(data))
}

func TestClusterGraph_Equal(t *testing.T) {
	a := domain.NewClusterGraph("c1", []domain.Node{{PersonID: "1"}}, nil)
	b := domain.NewClusterGraph("c1", []domain.Node{{PersonID: "1"}}, nil)
	c := domain.NewClusterGraph("c2", []domain.Node{{PersonID: "1"}}, nil)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	var none *domain.ClusterGraph
	assert.True(t, none.Equal(nil))
}

func TestOperation_LabelFallbacks(t *testing.T) {
	assert.Equal(t, "GetCluster", domain.Operation{Type: "query", Name: "GetCluster"}.Label())
	assert.Equal(t, "mutation", domain.Operation{Type: "mutation"}.Label())
	assert.Equal(t, "persisted", domain.Operation{Persisted: true}.Label())
	assert.Equal(t, "anonymous", domain.Operation{}.Label())
}

func TestOperation_KindIsBounded(t *testing.T) {
	tests := []struct {
		op   domain.Operation
		want string
	}{
		{op: domain.Operation{Type: "query", Name: "GetCluster"}, want: "query"},
		{op: domain.Operation{Type: "subscription", Name: "Live"}, want: "subscription"},
		{op: domain.Operation{Type: "fragment", Name: "x"}, want: "anonymous"},
		{op: domain.Operation{Name: "Anything", Persisted: true}, want: "persisted"},
		{op: domain.Operation{Name: "Anything"}, want: "anonymous"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.Kind(), tt.op)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, domain.DefaultMaxAge, cfg.Cache.MaxAge)
	assert.Equal(t, domain.DefaultServerAddr, cfg.Server.Addr)
	assert.Len(t, cfg.Classifier.Patterns, len(domain.DefaultPatterns()))
	assert.Empty(t, cfg.Spool.Dir)
}

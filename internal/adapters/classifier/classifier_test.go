package classifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clustertap/internal/adapters/classifier"
	"go.trai.ch/clustertap/internal/core/domain"
	"go.trai.ch/zerr"
)

func newDefault(t *testing.T) *classifier.Classifier {
	t.Helper()
	c, err := classifier.New(domain.DefaultPatterns())
	require.NoError(t, err)
	return c
}

func TestClassifier_IsOfInterest(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		payload  string
		want     bool
	}{
		{name: "graphql address without payload", endpoint: "https://x/graphql?id=1", want: true},
		{name: "address match is case-insensitive", endpoint: "https://x/GraphQL", want: true},
		{name: "gql path", endpoint: "https://x/gql", want: true},
		{name: "gql path with query", endpoint: "https://x/gql?op=a", want: true},
		{name: "gql must be a path segment", endpoint: "https://x/gqlish", want: false},
		{name: "persisted queries", endpoint: "https://x/persisted-queries/abc", want: true},
		{name: "api query path", endpoint: "https://x/api/query", want: true},
		{name: "gateway path", endpoint: "https://x/service/match-svc/gateway/graph", want: true},
		{name: "unrelated payload", endpoint: "https://x/other", payload: `{"foo":1}`, want: false},
		{name: "query field", endpoint: "https://x/other", payload: `{"query":"{a}"}`, want: true},
		{name: "mutation field", endpoint: "https://x/other", payload: `{"mutation":"m"}`, want: true},
		{name: "operation name", endpoint: "https://x/other", payload: `{"operationName":"Get","variables":{}}`, want: true},
		{
			name:     "persisted query marker",
			endpoint: "https://x/other",
			payload:  `{"extensions":{"persistedQuery":{"version":1,"sha256Hash":"abc"}}}`,
			want:     true,
		},
		{name: "extensions without marker", endpoint: "https://x/other", payload: `{"extensions":{"trace":true}}`, want: false},
		{name: "batch with one operation", endpoint: "https://x/other", payload: `[{"foo":1},{"query":"{a}"}]`, want: true},
		{name: "batch without operations", endpoint: "https://x/other", payload: `[{"foo":1},2,"x"]`, want: false},
		{name: "body captured as text", endpoint: "https://x/other", payload: `"{\"query\":\"{a}\"}"`, want: true},
		{name: "not json", endpoint: "https://x/other", payload: `query=abc`, want: false},
		{name: "no payload", endpoint: "https://x/other", want: false},
		{name: "null payload", endpoint: "https://x/other", payload: `null`, want: false},
	}

	c := newDefault(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload domain.Payload
			if tt.payload != "" {
				payload = domain.Payload(tt.payload)
			}
			assert.Equal(t, tt.want, c.IsOfInterest(tt.endpoint, payload))
		})
	}
}

func TestClassifier_CustomPatterns(t *testing.T) {
	c, err := classifier.New([]string{`/graph$`})
	require.NoError(t, err)

	assert.True(t, c.IsOfInterest("https://x/graph", nil))
	assert.False(t, c.IsOfInterest("https://x/graphql", nil))
}

func TestClassifier_InvalidPattern(t *testing.T) {
	_, err := classifier.New([]string{`graphql`, `(`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidPattern.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, "(", zErr.Metadata()["pattern"])
}

func TestClassifier_Describe(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    domain.Operation
	}{
		{
			name:    "named query",
			payload: `{"query":"query ClusterById($clusterId: ID!) { cluster(id: $clusterId) { id } }"}`,
			want:    domain.Operation{Type: "query", Name: "ClusterById"},
		},
		{
			name:    "anonymous shorthand",
			payload: `{"query":"{a}"}`,
			want:    domain.Operation{Type: "query"},
		},
		{
			name:    "mutation with operation name fallback",
			payload: `{"query":"mutation { resolve(id: 1) }","operationName":"Resolve"}`,
			want:    domain.Operation{Type: "mutation", Name: "Resolve"},
		},
		{
			name:    "unparseable query uses operation name",
			payload: `{"query":"not graphql {","operationName":"Broken"}`,
			want:    domain.Operation{Name: "Broken"},
		},
		{
			name:    "persisted",
			payload: `{"operationName":"Clusters","extensions":{"persistedQuery":{"version":1}}}`,
			want:    domain.Operation{Name: "Clusters", Persisted: true},
		},
		{
			name:    "batch",
			payload: `[{"query":"subscription Live { x }"}]`,
			want:    domain.Operation{Type: "subscription", Name: "Live", Batched: true},
		},
		{
			name:    "not json",
			payload: `<html>`,
			want:    domain.Operation{},
		},
	}

	c := newDefault(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Describe(domain.Payload(tt.payload)))
		})
	}
}

func TestOperation_Label(t *testing.T) {
	assert.Equal(t, "Clusters", domain.Operation{Type: "query", Name: "Clusters"}.Label())
	assert.Equal(t, "query", domain.Operation{Type: "query"}.Label())
	assert.Equal(t, "persisted", domain.Operation{Persisted: true}.Label())
	assert.Equal(t, "anonymous", domain.Operation{}.Label())
}

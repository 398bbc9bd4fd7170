package extractor

import (
	"encoding/json"
	"strconv"
	"strings"

	"go.trai.ch/clustertap/internal/core/domain"
)

// firstAccepted canonicalizes the first candidate that passes the identity
// filter, the optional wanted predicate and the shape check.
func firstAccepted(candidates []map[string]any, expectedID string, wanted func(string) bool) (*domain.ClusterGraph, bool) {
	for _, candidate := range candidates {
		if g, ok := accept(candidate, expectedID, wanted); ok {
			return g, true
		}
	}
	return nil, false
}

func accept(candidate map[string]any, expectedID string, wanted func(string) bool) (*domain.ClusterGraph, bool) {
	id, _ := idString(candidate["id"])
	if expectedID != "" && id != expectedID {
		return nil, false
	}
	if wanted != nil && !wanted(id) {
		return nil, false
	}

	members, ok := candidate["members"].([]any)
	if !ok {
		return nil, false
	}
	rawEdges, ok := candidate["edges"].([]any)
	if !ok {
		return nil, false
	}

	return domain.NewClusterGraph(id, canonicalNodes(members), canonicalEdges(rawEdges)), true
}

func canonicalNodes(members []any) []domain.Node {
	nodes := make([]domain.Node, 0, len(members))
	for _, m := range members {
		node := nested(m, "node")
		personID, ok := idString(node["id"])
		if !ok {
			continue
		}
		name, _ := node["name"].(string)
		if name == "" {
			name = domain.UnnamedPerson
		}
		nodes = append(nodes, domain.Node{PersonID: personID, Name: name})
	}
	return nodes
}

func canonicalEdges(rawEdges []any) []domain.Edge {
	edges := make([]domain.Edge, 0, len(rawEdges))
	for _, raw := range rawEdges {
		e, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		lower, _ := idString(nested(e, "nodeA")["id"])
		higher, _ := idString(nested(e, "nodeB")["id"])
		status, _ := e["status"].(string)

		edge := domain.Edge{LowerID: lower, HigherID: higher, Status: status}
		if subs, ok := e["subStatuses"].([]any); ok && len(subs) > 0 {
			edge.SubStatus, _ = subs[0].(string)
		}
		if scores, ok := e["scores"]; ok && scores != nil {
			edge.Notes = formatScores(scores)
		}
		edges = append(edges, edge)
	}
	return edges
}

// formatScores renders a score vector given either as an object with name,
// email and phone keys or as a list in that order.
func formatScores(scores any) string {
	var name, email, phone any
	switch s := scores.(type) {
	case map[string]any:
		name, email, phone = s["name"], s["email"], s["phone"]
	case []any:
		at := func(i int) any {
			if i < len(s) {
				return s[i]
			}
			return nil
		}
		name, email, phone = at(0), at(1), at(2)
	default:
		return ""
	}

	var b strings.Builder
	b.WriteString("Scores: Name=")
	b.WriteString(formatScore(name))
	b.WriteString(", Email=")
	b.WriteString(formatScore(email))
	b.WriteString(", Phone=")
	b.WriteString(formatScore(phone))
	return b.String()
}

func formatScore(v any) string {
	switch s := v.(type) {
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case string:
		if s != "" {
			return s
		}
	}
	return "-"
}

// idString normalizes a JSON id, which may arrive as a string or a number.
func idString(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		return id, id != ""
	case json.Number:
		return id.String(), true
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), true
	}
	return "", false
}

func nested(v any, key string) map[string]any {
	obj, _ := v.(map[string]any)
	child, _ := obj[key].(map[string]any)
	return child
}

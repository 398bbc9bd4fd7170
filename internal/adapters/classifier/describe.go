package classifier

import (
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"go.trai.ch/clustertap/internal/core/domain"
)

// Describe reports what operation a request payload carries. The query text
// is parsed when present; operationName fills in a missing name. The result
// is informational and has no bearing on IsOfInterest.
func (c *Classifier) Describe(requestPayload domain.Payload) domain.Operation {
	body, err := requestPayload.Decode()
	if err != nil {
		return domain.Operation{}
	}

	switch v := body.(type) {
	case map[string]any:
		return describeObject(v)
	case []any:
		for _, item := range v {
			if obj, ok := item.(map[string]any); ok && isOperationObject(obj) {
				op := describeObject(obj)
				op.Batched = true
				return op
			}
		}
	}
	return domain.Operation{}
}

func describeObject(obj map[string]any) domain.Operation {
	var op domain.Operation

	if query, ok := obj["query"].(string); ok && query != "" {
		op.Type, op.Name = parseOperation(query)
	}
	if op.Name == "" {
		op.Name, _ = obj["operationName"].(string)
	}
	if persistedQuery(obj) != nil {
		op.Persisted = true
	}
	return op
}

// parseOperation returns the type and name of the first operation in a
// query document, or empty strings when the text does not parse.
func parseOperation(query string) (opType, name string) {
	document, err := parser.Parse(parser.ParseParams{
		Source: query,
	})
	if err != nil {
		return "", ""
	}

	for _, definition := range document.Definitions {
		def, ok := definition.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if def.Name != nil {
			name = def.Name.Value
		}
		return def.Operation, name
	}
	return "", ""
}

package domain

// Operation describes the structured query carried by a request, as far as
// it can be told from the payload. It is informational only.
type Operation struct {
	// Type is "query", "mutation", "subscription", or empty when unknown.
	Type string
	// Name is the operation name, if any.
	Name string
	// Persisted is set when the request references a persisted query.
	Persisted bool
	// Batched is set when the payload is a list of operations.
	Batched bool
}

// Kind returns the operation type drawn from a fixed set: "query",
// "mutation", "subscription", "persisted" or "anonymous". Unlike Label it
// never echoes client-supplied names, so it is safe as a metric label.
func (o Operation) Kind() string {
	switch o.Type {
	case "query", "mutation", "subscription":
		return o.Type
	}
	if o.Persisted {
		return "persisted"
	}
	return "anonymous"
}

// Label returns a short human-readable form suitable for logs.
func (o Operation) Label() string {
	switch {
	case o.Name != "":
		return o.Name
	case o.Type != "":
		return o.Type
	case o.Persisted:
		return "persisted"
	default:
		return "anonymous"
	}
}

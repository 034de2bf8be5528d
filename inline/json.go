package inline

import (
	"encoding/json"
	"io"

	"github.com/invopop/jsonschema"
)

// Step is the outcome of one operation.
type Step struct {
	// Op is the operation as given.
	Op string `json:"op"`
	// Value is the popped or peeked element, the size, or the number of released elements.
	Value *int `json:"value,omitempty"`
	// Index is the bottom-up position found by search.
	Index *int `json:"index,omitempty"`
	// Empty is the answer to isempty.
	Empty *bool `json:"empty,omitempty"`
	// State is the stack rendered after the operation.
	State string `json:"state,omitempty"`
	// Error describes a failed operation.
	Error string `json:"error,omitempty"`
}

// Output is the JSON document produced by a run.
type Output struct {
	Kind     string  `json:"kind"`
	Capacity int     `json:"capacity,omitempty"`
	Steps    []*Step `json:"steps"`
	// Final lists the remaining elements from bottom to top.
	Final []int `json:"final"`
}

func writeJson(w io.Writer, output *Output) error {
	return json.NewEncoder(w).Encode(output)
}

// Schema describes Output.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}
	return reflector.Reflect(&Output{})
}

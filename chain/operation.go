package chain

import (
	"encoding/json"
	"fmt"
)

// Operation is one named action carried by a transaction. On the wire an
// operation is a two-element JSON array, the operation name followed by its
// body object, matching the condenser API conventions.
type Operation struct {
	Name string
	Body any
}

func (op Operation) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{op.Name, op.Body})
}

func (op *Operation) UnmarshalJSON(b []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(b, &tuple); err != nil {
		return fmt.Errorf("parsing operation tuple: %w", err)
	}
	if len(tuple) != 2 {
		return fmt.Errorf("operation tuple has %d elements, expected 2", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &op.Name); err != nil {
		return fmt.Errorf("parsing operation name: %w", err)
	}
	var body any
	if err := json.Unmarshal(tuple[1], &body); err != nil {
		return fmt.Errorf("parsing operation body: %w", err)
	}
	op.Body = body
	return nil
}

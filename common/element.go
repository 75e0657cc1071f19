package common

import (
	"encoding/json"
	"fmt"
)

// elementKey is the fixed wire key for element references.
const elementKey = "ELEMENT"

// Element is an opaque server-issued reference to a DOM element. It
// round-trips through the wire shape {"ELEMENT": <id>}.
type Element struct {
	ID string
}

func (e Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{elementKey: e.ID})
}

func (e *Element) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("decoding element reference: %w", err)
	}
	id, ok := m[elementKey]
	if !ok {
		return fmt.Errorf("element reference is missing the %q key", elementKey)
	}
	e.ID = id
	return nil
}

// WindowHandle is an opaque server-issued reference to a browser window.
type WindowHandle string

// CurrentWindow is the reserved handle naming the currently focused window.
// It is never a server-issued value and must not be confused with one.
const CurrentWindow WindowHandle = "current"

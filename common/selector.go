package common

import (
	"encoding/json"
	"fmt"
)

// Strategy is a named method for locating an element within a document.
type Strategy string

const (
	ByID              Strategy = "id"
	ByName            Strategy = "name"
	ByClass           Strategy = "class name"
	ByTag             Strategy = "tag name"
	ByLinkText        Strategy = "link text"
	ByPartialLinkText Strategy = "partial link text"
	ByCSS             Strategy = "css selector"
	ByXPath           Strategy = "xpath"
)

var strategies = map[string]Strategy{
	"id": ByID, "name": ByName, "class name": ByClass, "tag name": ByTag,
	"link text": ByLinkText, "partial link text": ByPartialLinkText,
	"css selector": ByCSS, "xpath": ByXPath,
}

// Selector pairs a locator strategy with its value. It encodes to
// {"using": <strategy>, "value": <string>}.
type Selector struct {
	Using Strategy
	Value string
}

func ID(v string) Selector    { return Selector{Using: ByID, Value: v} }
func Name(v string) Selector  { return Selector{Using: ByName, Value: v} }
func Tag(v string) Selector   { return Selector{Using: ByTag, Value: v} }
func CSS(v string) Selector   { return Selector{Using: ByCSS, Value: v} }
func XPath(v string) Selector { return Selector{Using: ByXPath, Value: v} }

// Class locates by a single class name; compound class values are not
// supported by the protocol.
func Class(v string) Selector { return Selector{Using: ByClass, Value: v} }

func LinkText(v string) Selector { return Selector{Using: ByLinkText, Value: v} }

func PartialLinkText(v string) Selector {
	return Selector{Using: ByPartialLinkText, Value: v}
}

func (s Selector) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"using": string(s.Using),
		"value": s.Value,
	})
}

func (s *Selector) UnmarshalJSON(data []byte) error {
	var raw struct {
		Using string `json:"using"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding selector: %w", err)
	}
	strategy, ok := strategies[raw.Using]
	if !ok {
		return fmt.Errorf("unrecognized locator strategy %q", raw.Using)
	}
	s.Using = strategy
	s.Value = raw.Value
	return nil
}

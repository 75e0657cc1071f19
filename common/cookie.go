package common

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/guregu/null.v3"
)

// Cookie is a browser cookie. Name and Value are required; the optional
// fields are omitted from the wire when absent, which lets the server pick
// its own defaults.
type Cookie struct {
	Name   string
	Value  string
	Path   null.String
	Domain null.String
	Secure null.Bool
	// Expiry is a Unix epoch timestamp in seconds.
	Expiry null.Int
}

// NewCookie returns a cookie with only name and value set; the server
// chooses defaults for everything else.
func NewCookie(name, value string) Cookie {
	return Cookie{Name: name, Value: value}
}

func (c Cookie) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"name":  c.Name,
		"value": c.Value,
	}
	if c.Path.Valid {
		m["path"] = c.Path.String
	}
	if c.Domain.Valid {
		m["domain"] = c.Domain.String
	}
	if c.Secure.Valid {
		m["secure"] = c.Secure.Bool
	}
	if c.Expiry.Valid {
		m["expiry"] = c.Expiry.Int64
	}
	return json.Marshal(m)
}

func (c *Cookie) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name   *string `json:"name"`
		Value  *string `json:"value"`
		Path   *string `json:"path"`
		Domain *string `json:"domain"`
		Secure *bool   `json:"secure"`
		Expiry *int64  `json:"expiry"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding cookie: %w", err)
	}
	if raw.Name == nil {
		return errors.New("cookie is missing name")
	}
	if raw.Value == nil {
		return errors.New("cookie is missing value")
	}
	c.Name = *raw.Name
	c.Value = *raw.Value
	c.Path = null.StringFromPtr(raw.Path)
	c.Domain = null.StringFromPtr(raw.Domain)
	c.Secure = null.BoolFromPtr(raw.Secure)
	c.Expiry = null.IntFromPtr(raw.Expiry)
	return nil
}

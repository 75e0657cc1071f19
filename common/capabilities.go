package common

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/guregu/null.v3"
)

// Capabilities describes a browser configuration. The same shape travels in
// both directions with two interpretations: sent to the server it expresses
// the desired configuration (an absent flag means "no preference"); received
// from the server it expresses actual support (an absent flag means
// "unsupported"). Consumers must respect that duality.
type Capabilities struct {
	Browser  Browser
	Version  null.String
	Platform Platform
	// Proxy is nil when no proxy preference is expressed.
	Proxy ProxyConfig

	JavascriptEnabled        null.Bool
	TakesScreenshot          null.Bool
	HandlesAlerts            null.Bool
	DatabaseEnabled          null.Bool
	LocationContextEnabled   null.Bool
	ApplicationCacheEnabled  null.Bool
	BrowserConnectionEnabled null.Bool
	CSSSelectorsEnabled      null.Bool
	WebStorageEnabled        null.Bool
	Rotatable                null.Bool
	AcceptSSLCerts           null.Bool
	NativeEvents             null.Bool
}

// NewCapabilities returns the default desired capabilities: Firefox on any
// platform with everything else left unspecified.
func NewCapabilities() Capabilities {
	return Capabilities{
		Browser:  Firefox{},
		Platform: PlatformAny,
	}
}

// capabilityFlags lists the optional boolean feature flags and their fixed
// wire keys, in wire-key order.
var capabilityFlags = []struct {
	key string
	get func(*Capabilities) *null.Bool
}{
	{"javascriptEnabled", func(c *Capabilities) *null.Bool { return &c.JavascriptEnabled }},
	{"takesScreenshot", func(c *Capabilities) *null.Bool { return &c.TakesScreenshot }},
	{"handlesAlerts", func(c *Capabilities) *null.Bool { return &c.HandlesAlerts }},
	{"databaseEnabled", func(c *Capabilities) *null.Bool { return &c.DatabaseEnabled }},
	{"locationContextEnabled", func(c *Capabilities) *null.Bool { return &c.LocationContextEnabled }},
	{"applicationCacheEnabled", func(c *Capabilities) *null.Bool { return &c.ApplicationCacheEnabled }},
	{"browserConnectionEnabled", func(c *Capabilities) *null.Bool { return &c.BrowserConnectionEnabled }},
	{"cssSelectorsEnabled", func(c *Capabilities) *null.Bool { return &c.CSSSelectorsEnabled }},
	{"webStorageEnabled", func(c *Capabilities) *null.Bool { return &c.WebStorageEnabled }},
	{"rotatable", func(c *Capabilities) *null.Bool { return &c.Rotatable }},
	{"acceptSslCerts", func(c *Capabilities) *null.Bool { return &c.AcceptSSLCerts }},
	{"nativeEvents", func(c *Capabilities) *null.Bool { return &c.NativeEvents }},
}

// MarshalJSON encodes the capabilities to a flat JSON object with fixed
// keys. Fields left unset are omitted entirely; the selected browser
// variant's extra fields are merged into the same object.
func (c Capabilities) MarshalJSON() ([]byte, error) {
	if c.Browser == nil {
		return nil, errors.New("capabilities: a browser must be selected")
	}
	platform := c.Platform
	if platform == "" {
		platform = PlatformAny
	}
	m := map[string]any{
		"browserName": string(c.Browser.Name()),
		"platform":    string(platform),
	}
	if c.Version.Valid {
		m["version"] = c.Version.String
	}
	if c.Proxy != nil {
		m["proxy"] = encodeProxy(c.Proxy)
	}
	for _, f := range capabilityFlags {
		if b := f.get(&c); b.Valid {
			m[f.key] = b.Bool
		}
	}
	for k, v := range c.Browser.capabilityFields() {
		m[k] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes a capability object as reported by the server.
// browserName and platform are required; everything else decodes to its
// no-preference value when absent. A missing required field or an
// unrecognized enum string is a hard error.
func (c *Capabilities) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding capability object: %w", err)
	}

	nameRaw, ok := raw["browserName"]
	if !ok {
		return errors.New("capability object is missing browserName")
	}
	var name string
	if err := json.Unmarshal(nameRaw, &name); err != nil {
		return fmt.Errorf("decoding browserName: %w", err)
	}
	browser, err := browserByName(name)
	if err != nil {
		return err
	}
	browser, err = decodeBrowserFields(browser, raw)
	if err != nil {
		return err
	}

	platRaw, ok := raw["platform"]
	if !ok {
		return errors.New("capability object is missing platform")
	}
	var platform Platform
	if err := json.Unmarshal(platRaw, &platform); err != nil {
		return err
	}

	out := Capabilities{Browser: browser, Platform: platform}

	if v, ok := raw["version"]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return fmt.Errorf("decoding version: %w", err)
		}
		out.Version = null.StringFrom(s)
	}
	if p, ok := raw["proxy"]; ok {
		if out.Proxy, err = decodeProxy(p); err != nil {
			return err
		}
	}
	for _, f := range capabilityFlags {
		v, ok := raw[f.key]
		if !ok {
			continue
		}
		var b bool
		if err := json.Unmarshal(v, &b); err != nil {
			return fmt.Errorf("decoding capability flag %q: %w", f.key, err)
		}
		*f.get(&out) = null.BoolFrom(b)
	}

	*c = out
	return nil
}

// decodeBrowserFields recovers the variant-specific fields from the flat
// capability object so that encoding and decoding are inverses.
func decodeBrowserFields(b Browser, raw map[string]json.RawMessage) (Browser, error) {
	getString := func(key string, dst *string) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("decoding %q: %w", key, err)
		}
		return nil
	}
	getStrings := func(key string, dst *[]string) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("decoding %q: %w", key, err)
		}
		return nil
	}

	switch bb := b.(type) {
	case Firefox:
		if err := getString("firefox_profile", &bb.Profile); err != nil {
			return nil, err
		}
		if err := getString("firefox_binary", &bb.Binary); err != nil {
			return nil, err
		}
		if v, ok := raw["loggingPrefs"]; ok {
			var prefs struct {
				Driver string `json:"driver"`
			}
			if err := json.Unmarshal(v, &prefs); err != nil {
				return nil, fmt.Errorf("decoding loggingPrefs: %w", err)
			}
			level, ok := logLevels[prefs.Driver]
			if !ok {
				return nil, fmt.Errorf("unrecognized driver log level %q", prefs.Driver)
			}
			bb.LogLevel = level
		}
		return bb, nil
	case Chrome:
		if err := getString("chrome.chromedriverVersion", &bb.DriverVersion); err != nil {
			return nil, err
		}
		if err := getString("chrome.binary", &bb.Binary); err != nil {
			return nil, err
		}
		if err := getStrings("chrome.switches", &bb.Switches); err != nil {
			return nil, err
		}
		if err := getStrings("chrome.extensions", &bb.Extensions); err != nil {
			return nil, err
		}
		return bb, nil
	case IE:
		if v, ok := raw["ignoreProtectedModeSettings"]; ok {
			if err := json.Unmarshal(v, &bb.IgnoreProtectedModeSettings); err != nil {
				return nil, fmt.Errorf("decoding ignoreProtectedModeSettings: %w", err)
			}
		}
		return bb, nil
	default:
		return b, nil
	}
}

package common

import (
	"encoding/json"
	"fmt"
)

// ProxyConfig describes how the browser should route its traffic. The set
// of variants is closed: only types in this package implement it.
type ProxyConfig interface {
	proxyType() string
	proxyFields() map[string]any
}

// NoProxy disables proxying.
type NoProxy struct{}

func (NoProxy) proxyType() string            { return "DIRECT" }
func (NoProxy) proxyFields() map[string]any { return nil }

// UseSystemSettings defers to the OS proxy configuration.
type UseSystemSettings struct{}

func (UseSystemSettings) proxyType() string            { return "SYSTEM" }
func (UseSystemSettings) proxyFields() map[string]any { return nil }

// AutoDetect asks the browser to discover a proxy on its own.
type AutoDetect struct{}

func (AutoDetect) proxyType() string            { return "AUTODETECT" }
func (AutoDetect) proxyFields() map[string]any { return nil }

// PAC points the browser at a proxy auto-config script.
type PAC struct {
	URL string
}

func (PAC) proxyType() string { return "PAC" }
func (p PAC) proxyFields() map[string]any {
	return map[string]any{"autoConfigUrl": p.URL}
}

// Manual configures per-scheme proxies as host:port strings. The strings
// are not checked; empty-string behavior is the caller's responsibility.
type Manual struct {
	FTP  string
	SSL  string
	HTTP string
}

func (Manual) proxyType() string { return "MANUAL" }
func (p Manual) proxyFields() map[string]any {
	return map[string]any{
		"ftpProxy":  p.FTP,
		"sslProxy":  p.SSL,
		"httpProxy": p.HTTP,
	}
}

func encodeProxy(p ProxyConfig) map[string]any {
	m := map[string]any{"proxyType": p.proxyType()}
	for k, v := range p.proxyFields() {
		m[k] = v
	}
	return m
}

func decodeProxy(data []byte) (ProxyConfig, error) {
	var raw struct {
		ProxyType     *string `json:"proxyType"`
		AutoConfigURL string  `json:"autoConfigUrl"`
		FTPProxy      string  `json:"ftpProxy"`
		SSLProxy      string  `json:"sslProxy"`
		HTTPProxy     string  `json:"httpProxy"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding proxy object: %w", err)
	}
	if raw.ProxyType == nil {
		return nil, fmt.Errorf("proxy object is missing proxyType")
	}
	switch *raw.ProxyType {
	case "DIRECT":
		return NoProxy{}, nil
	case "SYSTEM":
		return UseSystemSettings{}, nil
	case "AUTODETECT":
		return AutoDetect{}, nil
	case "PAC":
		return PAC{URL: raw.AutoConfigURL}, nil
	case "MANUAL":
		return Manual{FTP: raw.FTPProxy, SSL: raw.SSLProxy, HTTP: raw.HTTPProxy}, nil
	default:
		return nil, fmt.Errorf("unrecognized proxy type %q", *raw.ProxyType)
	}
}

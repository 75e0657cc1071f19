package common

import "fmt"

// BrowserName is the wire name of a browser. Names are lower-case, with the
// one irregular mapping "ie" -> "internet explorer".
type BrowserName string

const (
	BrowserFirefox  BrowserName = "firefox"
	BrowserChrome   BrowserName = "chrome"
	BrowserIE       BrowserName = "internet explorer"
	BrowserOpera    BrowserName = "opera"
	BrowserHTMLUnit BrowserName = "htmlunit"
	BrowserIPhone   BrowserName = "iphone"
	BrowserIPad     BrowserName = "ipad"
	BrowserAndroid  BrowserName = "android"
)

// Browser selects a browser and carries its variant-specific configuration.
// The set of variants is closed: only types in this package implement it.
// A variant's extra fields only matter when that variant is selected; the
// other variants contribute nothing to the capability object.
type Browser interface {
	Name() BrowserName

	// capabilityFields returns the variant-specific keys merged into the
	// flat capability object on the desired side.
	capabilityFields() map[string]any
}

// LogLevel is a browser driver log level preference.
type LogLevel string

const (
	LogOff     LogLevel = "OFF"
	LogSevere  LogLevel = "SEVERE"
	LogWarning LogLevel = "WARNING"
	LogInfo    LogLevel = "INFO"
	LogConfig  LogLevel = "CONFIG"
	LogFine    LogLevel = "FINE"
	LogFiner   LogLevel = "FINER"
	LogFinest  LogLevel = "FINEST"
	LogAll     LogLevel = "ALL"
)

var logLevels = map[string]LogLevel{
	"OFF": LogOff, "SEVERE": LogSevere, "WARNING": LogWarning,
	"INFO": LogInfo, "CONFIG": LogConfig, "FINE": LogFine,
	"FINER": LogFiner, "FINEST": LogFinest, "ALL": LogAll,
}

// Firefox selects Firefox.
type Firefox struct {
	// Profile is a prepared profile archive, zipped and base64-encoded.
	// Preparing profiles is the caller's job; the client only ships the
	// encoded bytes.
	Profile  string
	LogLevel LogLevel
	Binary   string
}

func (Firefox) Name() BrowserName { return BrowserFirefox }

func (b Firefox) capabilityFields() map[string]any {
	m := make(map[string]any)
	if b.Profile != "" {
		m["firefox_profile"] = b.Profile
	}
	if b.LogLevel != "" {
		m["loggingPrefs"] = map[string]any{"driver": string(b.LogLevel)}
	}
	if b.Binary != "" {
		m["firefox_binary"] = b.Binary
	}
	return m
}

// Chrome selects Chrome.
type Chrome struct {
	DriverVersion string
	Binary        string
	// Switches are extra chrome command-line options.
	Switches []string
	// Extensions are packaged extensions, each base64-encoded.
	Extensions []string
}

func (Chrome) Name() BrowserName { return BrowserChrome }

func (b Chrome) capabilityFields() map[string]any {
	m := make(map[string]any)
	if b.DriverVersion != "" {
		m["chrome.chromedriverVersion"] = b.DriverVersion
	}
	if b.Binary != "" {
		m["chrome.binary"] = b.Binary
	}
	if len(b.Switches) > 0 {
		m["chrome.switches"] = b.Switches
	}
	if len(b.Extensions) > 0 {
		m["chrome.extensions"] = b.Extensions
	}
	return m
}

// IE selects Internet Explorer.
type IE struct {
	IgnoreProtectedModeSettings bool
}

func (IE) Name() BrowserName { return BrowserIE }

func (b IE) capabilityFields() map[string]any {
	if !b.IgnoreProtectedModeSettings {
		return nil
	}
	return map[string]any{"ignoreProtectedModeSettings": true}
}

// Opera selects Opera.
type Opera struct{}

func (Opera) Name() BrowserName               { return BrowserOpera }
func (Opera) capabilityFields() map[string]any { return nil }

// HTMLUnit selects the HtmlUnit headless browser.
type HTMLUnit struct{}

func (HTMLUnit) Name() BrowserName               { return BrowserHTMLUnit }
func (HTMLUnit) capabilityFields() map[string]any { return nil }

// IPhone selects the iPhone driver.
type IPhone struct{}

func (IPhone) Name() BrowserName               { return BrowserIPhone }
func (IPhone) capabilityFields() map[string]any { return nil }

// IPad selects the iPad driver.
type IPad struct{}

func (IPad) Name() BrowserName               { return BrowserIPad }
func (IPad) capabilityFields() map[string]any { return nil }

// Android selects the Android driver.
type Android struct{}

func (Android) Name() BrowserName               { return BrowserAndroid }
func (Android) capabilityFields() map[string]any { return nil }

// browserByName maps a wire name back to its browser variant. Decoding an
// unrecognized name is a hard failure, not a silent default.
func browserByName(name string) (Browser, error) {
	switch BrowserName(name) {
	case BrowserFirefox:
		return Firefox{}, nil
	case BrowserChrome:
		return Chrome{}, nil
	case BrowserIE:
		return IE{}, nil
	case BrowserOpera:
		return Opera{}, nil
	case BrowserHTMLUnit:
		return HTMLUnit{}, nil
	case BrowserIPhone:
		return IPhone{}, nil
	case BrowserIPad:
		return IPad{}, nil
	case BrowserAndroid:
		return Android{}, nil
	default:
		return nil, fmt.Errorf("unrecognized browser name %q", name)
	}
}

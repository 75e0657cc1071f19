package common

import (
	"encoding/json"
	"fmt"
)

// Platform is an OS constraint on the browser. The wire tokens are fixed
// upper-case strings.
type Platform string

const (
	PlatformWindows Platform = "WINDOWS"
	PlatformXP      Platform = "XP"
	PlatformVista   Platform = "VISTA"
	PlatformMac     Platform = "MAC"
	PlatformLinux   Platform = "LINUX"
	PlatformUnix    Platform = "UNIX"
	// PlatformAny means no platform preference. It is the default: platform
	// is always meaningful, so it's never simply absent.
	PlatformAny Platform = "ANY"
)

var platforms = map[string]Platform{
	"WINDOWS": PlatformWindows, "XP": PlatformXP, "VISTA": PlatformVista,
	"MAC": PlatformMac, "LINUX": PlatformLinux, "UNIX": PlatformUnix,
	"ANY": PlatformAny,
}

func (p *Platform) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := platforms[s]
	if !ok {
		return fmt.Errorf("unrecognized platform %q", s)
	}
	*p = v
	return nil
}

// Orientation is a device screen orientation.
type Orientation string

const (
	OrientationLandscape Orientation = "LANDSCAPE"
	OrientationPortrait  Orientation = "PORTRAIT"
)

var orientations = map[string]Orientation{
	"LANDSCAPE": OrientationLandscape,
	"PORTRAIT":  OrientationPortrait,
}

func (o *Orientation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := orientations[s]
	if !ok {
		return fmt.Errorf("unrecognized orientation %q", s)
	}
	*o = v
	return nil
}

// MouseButton names a mouse button for low-level mouse commands.
type MouseButton string

const (
	MouseLeft   MouseButton = "LEFT"
	MouseMiddle MouseButton = "MIDDLE"
	MouseRight  MouseButton = "RIGHT"
)

var mouseButtons = map[string]MouseButton{
	"LEFT": MouseLeft, "MIDDLE": MouseMiddle, "RIGHT": MouseRight,
}

func (m *MouseButton) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := mouseButtons[s]
	if !ok {
		return fmt.Errorf("unrecognized mouse button %q", s)
	}
	*m = v
	return nil
}

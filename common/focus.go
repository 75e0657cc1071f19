package common

// FocusTarget selects what the session's subsequent commands address: a
// window by handle, a frame within the current window, or the top-level
// document. Values are built with the constructors below.
type FocusTarget interface {
	// FocusCommand returns the focus command's path suffix ("window" or
	// "frame") and request body.
	FocusCommand() (path string, body any)
}

type windowTarget WindowHandle

func (w windowTarget) FocusCommand() (string, any) {
	return "window", map[string]any{"name": string(w)}
}

// Window targets the window with the given handle.
func Window(h WindowHandle) FocusTarget { return windowTarget(h) }

type frameTarget struct {
	id any
}

func (f frameTarget) FocusCommand() (string, any) {
	return "frame", map[string]any{"id": f.id}
}

// FrameIndex targets a frame by its zero-based index.
func FrameIndex(i int) FocusTarget { return frameTarget{id: i} }

// FrameName targets a frame by its name or id attribute.
func FrameName(name string) FocusTarget { return frameTarget{id: name} }

// FrameElement targets the frame owned by el.
func FrameElement(el Element) FocusTarget { return frameTarget{id: el} }

// DefaultFrame targets the top-level document.
func DefaultFrame() FocusTarget { return frameTarget{id: nil} }

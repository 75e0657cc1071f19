package wire

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"gopkg.in/guregu/null.v3"

	"github.com/xdriver/jsonwire/common"
)

// The high-level command surface. Every method is a thin wrapper over
// Execute with a fixed method, path template and argument shape; the engine
// underneath does all the real work.

func elementPath(el common.Element, suffix string) string {
	return fmt.Sprintf("/session/%s/element/%s%s", sessionIDParam, el.ID, suffix)
}

// OpenURL navigates the current window to u.
func (s *Session) OpenURL(ctx context.Context, u string) error {
	return s.Execute(ctx, http.MethodPost, pathSessionID+"/url", map[string]any{"url": u}, nil)
}

// URL returns the URL of the current page.
func (s *Session) URL(ctx context.Context) (string, error) {
	var u string
	err := s.Execute(ctx, http.MethodGet, pathSessionID+"/url", nil, &u)
	return u, err
}

// Back navigates back in the browser history.
func (s *Session) Back(ctx context.Context) error {
	return s.Execute(ctx, http.MethodPost, pathSessionID+"/back", nil, nil)
}

// Forward navigates forward in the browser history.
func (s *Session) Forward(ctx context.Context) error {
	return s.Execute(ctx, http.MethodPost, pathSessionID+"/forward", nil, nil)
}

// Refresh reloads the current page.
func (s *Session) Refresh(ctx context.Context) error {
	return s.Execute(ctx, http.MethodPost, pathSessionID+"/refresh", nil, nil)
}

// Title returns the current page title.
func (s *Session) Title(ctx context.Context) (string, error) {
	var t string
	err := s.Execute(ctx, http.MethodGet, pathSessionID+"/title", nil, &t)
	return t, err
}

// Source returns the current page source.
func (s *Session) Source(ctx context.Context) (string, error) {
	var src string
	err := s.Execute(ctx, http.MethodGet, pathSessionID+"/source", nil, &src)
	return src, err
}

// FindElement locates the first element matching sel.
func (s *Session) FindElement(ctx context.Context, sel common.Selector) (common.Element, error) {
	var el common.Element
	err := s.Execute(ctx, http.MethodPost, pathSessionID+"/element", sel, &el)
	return el, err
}

// FindElements locates all elements matching sel.
func (s *Session) FindElements(ctx context.Context, sel common.Selector) ([]common.Element, error) {
	var els []common.Element
	err := s.Execute(ctx, http.MethodPost, pathSessionID+"/elements", sel, &els)
	return els, err
}

// FindChildElement locates the first descendant of parent matching sel.
func (s *Session) FindChildElement(ctx context.Context, parent common.Element, sel common.Selector) (common.Element, error) {
	var el common.Element
	err := s.Execute(ctx, http.MethodPost, elementPath(parent, "/element"), sel, &el)
	return el, err
}

// FindChildElements locates all descendants of parent matching sel.
func (s *Session) FindChildElements(ctx context.Context, parent common.Element, sel common.Selector) ([]common.Element, error) {
	var els []common.Element
	err := s.Execute(ctx, http.MethodPost, elementPath(parent, "/elements"), sel, &els)
	return els, err
}

// Click clicks el.
func (s *Session) Click(ctx context.Context, el common.Element) error {
	return s.Execute(ctx, http.MethodPost, elementPath(el, "/click"), nil, nil)
}

// Clear clears a form element's value.
func (s *Session) Clear(ctx context.Context, el common.Element) error {
	return s.Execute(ctx, http.MethodPost, elementPath(el, "/clear"), nil, nil)
}

// SendKeys types text into el.
func (s *Session) SendKeys(ctx context.Context, el common.Element, text string) error {
	body := map[string]any{"value": []string{text}}
	return s.Execute(ctx, http.MethodPost, elementPath(el, "/value"), body, nil)
}

// Text returns el's visible text.
func (s *Session) Text(ctx context.Context, el common.Element) (string, error) {
	var t string
	err := s.Execute(ctx, http.MethodGet, elementPath(el, "/text"), nil, &t)
	return t, err
}

// Attr returns el's attribute named name; the null string when the
// attribute doesn't exist.
func (s *Session) Attr(ctx context.Context, el common.Element, name string) (null.String, error) {
	var v null.String
	err := s.Execute(ctx, http.MethodGet, elementPath(el, "/attribute/"+name), nil, &v)
	return v, err
}

// CSSProperty returns the computed value of el's CSS property named name.
func (s *Session) CSSProperty(ctx context.Context, el common.Element, name string) (string, error) {
	var v string
	err := s.Execute(ctx, http.MethodGet, elementPath(el, "/css/"+name), nil, &v)
	return v, err
}

// ExecuteScript runs script synchronously in the page, passing args, and
// decodes the script's return value into res. Arguments may be of mixed
// types; wrap each with common.Arg or build the list with common.Args.
func (s *Session) ExecuteScript(ctx context.Context, script string, args []common.JSArg, res any) error {
	if args == nil {
		args = []common.JSArg{}
	}
	body := map[string]any{"script": script, "args": args}
	return s.Execute(ctx, http.MethodPost, pathSessionID+"/execute", body, res)
}

// ExecuteAsyncScript runs script asynchronously; the script signals
// completion by invoking its final callback argument.
func (s *Session) ExecuteAsyncScript(ctx context.Context, script string, args []common.JSArg, res any) error {
	if args == nil {
		args = []common.JSArg{}
	}
	body := map[string]any{"script": script, "args": args}
	return s.Execute(ctx, http.MethodPost, pathSessionID+"/execute_async", body, res)
}

// Cookies returns all cookies visible to the current page.
func (s *Session) Cookies(ctx context.Context) ([]common.Cookie, error) {
	var cs []common.Cookie
	err := s.Execute(ctx, http.MethodGet, pathSessionID+"/cookie", nil, &cs)
	return cs, err
}

// SetCookie sets a cookie on the current page's domain.
func (s *Session) SetCookie(ctx context.Context, c common.Cookie) error {
	return s.Execute(ctx, http.MethodPost, pathSessionID+"/cookie", map[string]any{"cookie": c}, nil)
}

// DeleteCookie deletes the named cookie.
func (s *Session) DeleteCookie(ctx context.Context, name string) error {
	return s.Execute(ctx, http.MethodDelete, pathSessionID+"/cookie/"+name, nil, nil)
}

// DeleteCookies deletes all cookies visible to the current page.
func (s *Session) DeleteCookies(ctx context.Context) error {
	return s.Execute(ctx, http.MethodDelete, pathSessionID+"/cookie", nil, nil)
}

// WindowHandles returns the handles of all open windows.
func (s *Session) WindowHandles(ctx context.Context) ([]common.WindowHandle, error) {
	var hs []common.WindowHandle
	err := s.Execute(ctx, http.MethodGet, pathSessionID+"/window_handles", nil, &hs)
	return hs, err
}

// CurrentWindow returns the handle of the currently focused window.
func (s *Session) CurrentWindow(ctx context.Context) (common.WindowHandle, error) {
	var h common.WindowHandle
	err := s.Execute(ctx, http.MethodGet, pathSessionID+"/window_handle", nil, &h)
	return h, err
}

// CloseWindow closes the currently focused window.
func (s *Session) CloseWindow(ctx context.Context) error {
	return s.Execute(ctx, http.MethodDelete, pathSessionID+"/window", nil, nil)
}

// Focus switches the session's target window or frame.
func (s *Session) Focus(ctx context.Context, t common.FocusTarget) error {
	suffix, body := t.FocusCommand()
	return s.Execute(ctx, http.MethodPost, pathSessionID+"/"+suffix, body, nil)
}

// Screenshot captures the current page as a PNG.
func (s *Session) Screenshot(ctx context.Context) ([]byte, error) {
	var b64 string
	if err := s.Execute(ctx, http.MethodGet, pathSessionID+"/screenshot", nil, &b64); err != nil {
		return nil, err
	}
	img, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, &BadJSONError{Err: fmt.Errorf("decoding screenshot: %w", err), Body: []byte(b64)}
	}
	return img, nil
}

// Orientation returns the device's screen orientation.
func (s *Session) Orientation(ctx context.Context) (common.Orientation, error) {
	var o common.Orientation
	err := s.Execute(ctx, http.MethodGet, pathSessionID+"/orientation", nil, &o)
	return o, err
}

// SetOrientation rotates the device.
func (s *Session) SetOrientation(ctx context.Context, o common.Orientation) error {
	body := map[string]any{"orientation": string(o)}
	return s.Execute(ctx, http.MethodPost, pathSessionID+"/orientation", body, nil)
}

// MoveTo moves the mouse by an offset relative to el, or relative to the
// current mouse position when el is nil.
func (s *Session) MoveTo(ctx context.Context, el *common.Element, xOffset, yOffset int) error {
	body := map[string]any{"xoffset": xOffset, "yoffset": yOffset}
	if el != nil {
		body["element"] = el.ID
	}
	return s.Execute(ctx, http.MethodPost, pathSessionID+"/moveto", body, nil)
}

// ClickButton clicks a mouse button at the current mouse position.
func (s *Session) ClickButton(ctx context.Context, b common.MouseButton) error {
	body := map[string]any{"button": string(b)}
	return s.Execute(ctx, http.MethodPost, pathSessionID+"/click", body, nil)
}

// ButtonDown presses and holds a mouse button.
func (s *Session) ButtonDown(ctx context.Context, b common.MouseButton) error {
	body := map[string]any{"button": string(b)}
	return s.Execute(ctx, http.MethodPost, pathSessionID+"/buttondown", body, nil)
}

// ButtonUp releases a held mouse button.
func (s *Session) ButtonUp(ctx context.Context, b common.MouseButton) error {
	body := map[string]any{"button": string(b)}
	return s.Execute(ctx, http.MethodPost, pathSessionID+"/buttonup", body, nil)
}

// AlertText returns the text of the currently open alert.
func (s *Session) AlertText(ctx context.Context) (string, error) {
	var t string
	err := s.Execute(ctx, http.MethodGet, pathSessionID+"/alert_text", nil, &t)
	return t, err
}

// AcceptAlert accepts the currently open alert.
func (s *Session) AcceptAlert(ctx context.Context) error {
	return s.Execute(ctx, http.MethodPost, pathSessionID+"/accept_alert", nil, nil)
}

// DismissAlert dismisses the currently open alert.
func (s *Session) DismissAlert(ctx context.Context) error {
	return s.Execute(ctx, http.MethodPost, pathSessionID+"/dismiss_alert", nil, nil)
}

// SetImplicitWait sets how long element lookups poll before giving up.
func (s *Session) SetImplicitWait(ctx context.Context, d time.Duration) error {
	body := map[string]any{"ms": d.Milliseconds()}
	return s.Execute(ctx, http.MethodPost, pathSessionID+"/timeouts/implicit_wait", body, nil)
}

// SetAsyncScriptTimeout sets the completion deadline for async scripts.
func (s *Session) SetAsyncScriptTimeout(ctx context.Context, d time.Duration) error {
	body := map[string]any{"ms": d.Milliseconds()}
	return s.Execute(ctx, http.MethodPost, pathSessionID+"/timeouts/async_script", body, nil)
}

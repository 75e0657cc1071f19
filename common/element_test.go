package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementWireShape(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Element{ID: "0f4e-aa12"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ELEMENT":"0f4e-aa12"}`, string(data))

	var got Element
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, Element{ID: "0f4e-aa12"}, got)
}

func TestElementDecodeMissingKey(t *testing.T) {
	t.Parallel()

	var el Element
	err := json.Unmarshal([]byte(`{"element":"lower-case-key"}`), &el)
	assert.ErrorContains(t, err, "ELEMENT")
}

func TestJSArgHeterogeneousList(t *testing.T) {
	t.Parallel()

	args := Args(1, "two", true, nil, Element{ID: "e9"}, []int{3, 4})
	data, err := json.Marshal(args)
	require.NoError(t, err)
	assert.JSONEq(t, `[1,"two",true,null,{"ELEMENT":"e9"},[3,4]]`, string(data))
}

func TestJSArgPreSerialized(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Arg(json.RawMessage(`{"x":1}`)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1}`, string(data))
}

func TestFocusTargets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   FocusTarget
		wantPath string
		wantBody string
	}{
		{"window", Window(WindowHandle("w7")), "window", `{"name":"w7"}`},
		{"current_window", Window(CurrentWindow), "window", `{"name":"current"}`},
		{"frame_index", FrameIndex(2), "frame", `{"id":2}`},
		{"frame_name", FrameName("nav"), "frame", `{"id":"nav"}`},
		{"frame_element", FrameElement(Element{ID: "e1"}), "frame", `{"id":{"ELEMENT":"e1"}}`},
		{"default_frame", DefaultFrame(), "frame", `{"id":null}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path, body := tt.target.FocusCommand()
			assert.Equal(t, tt.wantPath, path)

			data, err := json.Marshal(body)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantBody, string(data))
		})
	}
}

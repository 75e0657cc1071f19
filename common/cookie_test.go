package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

func TestNewCookieDefaultsAbsent(t *testing.T) {
	t.Parallel()

	c := NewCookie("sid", "s3cret")
	data, err := json.Marshal(c)
	require.NoError(t, err)

	// Optional fields absent from the value are omitted from the wire so
	// the server chooses its own defaults.
	assert.JSONEq(t, `{"name":"sid","value":"s3cret"}`, string(data))
}

func TestCookieRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cookie Cookie
	}{
		{
			name:   "minimal",
			cookie: NewCookie("sid", "s3cret"),
		},
		{
			name: "all_fields",
			cookie: Cookie{
				Name:   "sid",
				Value:  "s3cret",
				Path:   null.StringFrom("/app"),
				Domain: null.StringFrom(".example.com"),
				Secure: null.BoolFrom(true),
				Expiry: null.IntFrom(1735689600),
			},
		},
		{
			name: "secure_false_still_present",
			cookie: Cookie{
				Name:   "a",
				Value:  "b",
				Secure: null.BoolFrom(false),
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(tt.cookie)
			require.NoError(t, err)

			var got Cookie
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tt.cookie, got)
		})
	}
}

func TestCookieDecodeMissingRequired(t *testing.T) {
	t.Parallel()

	var c Cookie
	assert.ErrorContains(t, json.Unmarshal([]byte(`{"value":"v"}`), &c), "name")
	assert.ErrorContains(t, json.Unmarshal([]byte(`{"name":"n"}`), &c), "value")
}

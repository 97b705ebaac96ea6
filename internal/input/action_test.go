package input

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name string
		want Action
	}{
		{"delete_line", ActionDeleteLine},
		{"Delete-Prev-Word", ActionDeletePrevWord},
		{"  go_to_end ", ActionGoToEnd},
		{"submit", ActionSubmit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAction(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseAction("teleport")
	require.Error(t, err)
}

func TestActionNamesRoundTrip(t *testing.T) {
	for a := ActionSetCursor; a <= ActionEscape; a++ {
		parsed, err := ParseAction(a.String())
		require.NoError(t, err, "action %d", int(a))
		assert.Equal(t, a, parsed)
	}
	assert.Equal(t, "unknown", ActionUnknown.String())
}

func TestCommandJSONUsesActionNames(t *testing.T) {
	data, err := json.Marshal(InsertChar('x'))
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"insert_char","rune":120}`, string(data))

	var cmd Command
	require.NoError(t, json.Unmarshal([]byte(`{"action":"set_cursor","pos":4}`), &cmd))
	assert.Equal(t, SetCursor(4), cmd)

	require.Error(t, json.Unmarshal([]byte(`{"action":"fly"}`), &cmd))
}

func TestResponseHelpers(t *testing.T) {
	r := Changed(true, false)
	assert.Equal(t, OutcomeChanged, r.Outcome)
	assert.False(t, r.Submitted())
	assert.False(t, r.Escaped())

	assert.True(t, Response{Outcome: OutcomeSubmitted}.Submitted())
	assert.True(t, Response{Outcome: OutcomeEscaped}.Escaped())
	assert.True(t, ActionSubmit.IsTerminal())
	assert.False(t, ActionDeleteLine.IsTerminal())

	data, err := json.Marshal(Response{Outcome: OutcomeEscaped})
	require.NoError(t, err)
	assert.JSONEq(t, `{"outcome":"escaped","value":false,"cursor":false}`, string(data))
}

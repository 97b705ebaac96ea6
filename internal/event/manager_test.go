package event

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/bethropolis/tide-input/internal/input"
)

func TestDispatch_InOrderUntilConsumed(t *testing.T) {
	m := NewManager()
	var got []string

	m.Subscribe(TypeValueChanged, func(e Event) bool {
		got = append(got, "first:"+e.Data.(FieldData).Value)
		return false
	})
	m.Subscribe(TypeValueChanged, func(e Event) bool {
		got = append(got, "second")
		return true
	})
	m.Subscribe(TypeValueChanged, func(e Event) bool {
		got = append(got, "never")
		return false
	})
	m.Subscribe(TypeSubmitted, func(e Event) bool {
		got = append(got, "submitted")
		return false
	})

	m.Dispatch(TypeValueChanged, FieldData{Value: "abc", Cursor: 3, VisualCursor: 3})
	if diff := cmp.Diff([]string{"first:abc", "second"}, got); diff != "" {
		t.Errorf("dispatch order mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatch_NoHandlers(t *testing.T) {
	m := NewManager()
	assert.NotPanics(t, func() { m.Dispatch(TypeAppQuit, AppQuitData{}) })
}

func TestUnsubscribe(t *testing.T) {
	m := NewManager()
	calls := 0
	id := m.Subscribe(TypeEscaped, func(Event) bool { calls++; return false })
	other := m.Subscribe(TypeEscaped, func(Event) bool { calls += 10; return false })

	m.Dispatch(TypeEscaped, nil)
	assert.Equal(t, 11, calls)

	m.Unsubscribe(id)
	m.Unsubscribe(id) // unknown ids are ignored
	m.Dispatch(TypeEscaped, nil)
	assert.Equal(t, 21, calls)

	m.Unsubscribe(other)
	m.Dispatch(TypeEscaped, nil)
	assert.Equal(t, 21, calls)
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	calls := 0
	var id SubscriptionID
	id = m.Subscribe(TypeCursorMoved, func(Event) bool {
		calls++
		m.Unsubscribe(id)
		return false
	})

	m.Dispatch(TypeCursorMoved, nil)
	m.Dispatch(TypeCursorMoved, nil)
	assert.Equal(t, 1, calls)
}

func TestTypeFor(t *testing.T) {
	tests := []struct {
		resp input.Response
		want Type
	}{
		{input.Changed(true, true), TypeValueChanged},
		{input.Changed(true, false), TypeValueChanged},
		{input.Changed(false, true), TypeCursorMoved},
		{input.Response{Outcome: input.OutcomeSubmitted}, TypeSubmitted},
		{input.Response{Outcome: input.OutcomeEscaped}, TypeEscaped},
		{input.Response{}, TypeUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TypeFor(tt.resp), "%+v", tt.resp)
	}
	assert.Equal(t, "value_changed", TypeValueChanged.String())
	assert.Equal(t, "unknown", Type(99).String())
}

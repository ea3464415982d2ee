package signal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignal_EmitsInRegistrationOrder(t *testing.T) {
	var s Signal[int]
	var got []string

	s.Subscribe(func(v int) { got = append(got, "a") })
	s.Subscribe(func(v int) { got = append(got, "b") })
	s.Emit(1)

	require.Equal(t, []string{"a", "b"}, got)
}

func TestSignal_Unsubscribe(t *testing.T) {
	var s Signal[string]
	calls := 0

	unsubscribe := s.Subscribe(func(string) { calls++ })
	s.Emit("x")
	unsubscribe()
	unsubscribe()
	s.Emit("y")

	require.Equal(t, 1, calls)
	require.Zero(t, s.Len())
}

func TestSignal_UnsubscribeOnlyRemovesOwnHandler(t *testing.T) {
	var s Signal[int]
	var a, b int

	unsubA := s.Subscribe(func(v int) { a += v })
	s.Subscribe(func(v int) { b += v })
	unsubA()
	s.Emit(2)

	require.Equal(t, 0, a)
	require.Equal(t, 2, b)
	require.Equal(t, 1, s.Len())
}

func TestSignal_HandlerMayUnsubscribeDuringEmit(t *testing.T) {
	var s Signal[int]
	calls := 0

	var unsubscribe Unsubscribe
	unsubscribe = s.Subscribe(func(int) {
		calls++
		unsubscribe()
	})
	s.Emit(1)
	s.Emit(2)

	require.Equal(t, 1, calls)
}

package model

import (
	"testing"

	apperrors "airline-reservation/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeatMap(t *testing.T) {
	m := NewSeatMap(DefaultSeatRows)

	assert.Equal(t, 144, len(m.Seats))
	assert.Equal(t, DefaultSeatRows, m.Rows)

	status, err := m.State("1A")
	require.NoError(t, err)
	assert.Equal(t, SeatStatusAvailable, status)

	status, err = m.State("24F")
	require.NoError(t, err)
	assert.Equal(t, SeatStatusAvailable, status)
}

func TestNormalizeSeat(t *testing.T) {
	assert.Equal(t, "12C", NormalizeSeat(" 12c "))
	assert.Equal(t, "1A", NormalizeSeat("1a"))
	assert.Equal(t, "", NormalizeSeat("   "))
}

func TestSeatMap_State(t *testing.T) {
	m := NewSeatMap(DefaultSeatRows)

	t.Run("Failed - InvalidSeat outside grid", func(t *testing.T) {
		_, err := m.State("25A")
		assert.ErrorIs(t, err, apperrors.ErrInvalidSeat)

		_, err = m.State("12G")
		assert.ErrorIs(t, err, apperrors.ErrInvalidSeat)

		_, err = m.State("0A")
		assert.ErrorIs(t, err, apperrors.ErrInvalidSeat)
	})
}

func TestSeatMap_SetState(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		m := NewSeatMap(DefaultSeatRows)

		require.NoError(t, m.SetState("12C", SeatStatusHold, "H-abc"))

		status, err := m.State("12C")
		require.NoError(t, err)
		assert.Equal(t, SeatStatusHold, status)

		ref, err := m.Ref("12C")
		require.NoError(t, err)
		assert.Equal(t, "H-abc", ref)
	})

	t.Run("Success - available clears ref", func(t *testing.T) {
		m := NewSeatMap(DefaultSeatRows)
		require.NoError(t, m.SetState("12C", SeatStatusHold, "H-abc"))

		require.NoError(t, m.SetState("12C", SeatStatusAvailable, "H-abc"))

		ref, err := m.Ref("12C")
		require.NoError(t, err)
		assert.Empty(t, ref)
	})

	t.Run("Failed - InvalidSeat", func(t *testing.T) {
		m := NewSeatMap(DefaultSeatRows)
		err := m.SetState("99Z", SeatStatusHold, "H-abc")
		assert.ErrorIs(t, err, apperrors.ErrInvalidSeat)
	})

	t.Run("Failed - occupied without ref", func(t *testing.T) {
		m := NewSeatMap(DefaultSeatRows)
		err := m.SetState("12C", SeatStatusHold, "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})
}

func TestSeatMap_ListByState(t *testing.T) {
	m := NewSeatMap(2)

	// row-major：第 1 排 A→F，再第 2 排
	available := m.ListByState(SeatStatusAvailable)
	assert.Equal(t, []string{"1A", "1B", "1C", "1D", "1E", "1F", "2A", "2B", "2C", "2D", "2E", "2F"}, available)

	require.NoError(t, m.SetState("1B", SeatStatusHold, "H-abc"))

	available = m.ListByState(SeatStatusAvailable)
	assert.Equal(t, []string{"1A", "1C", "1D", "1E", "1F", "2A", "2B", "2C", "2D", "2E", "2F"}, available)
	assert.Equal(t, []string{"1B"}, m.ListByState(SeatStatusHold))
}

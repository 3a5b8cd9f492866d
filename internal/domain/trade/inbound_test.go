package trade

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInbound(t *testing.T) {
	supplierID := uuid.New()

	t.Run("creates scheduled inbound", func(t *testing.T) {
		inbound, err := NewInbound(supplierID, "IN-001", time.Now())

		require.NoError(t, err)
		assert.Equal(t, "IN-001", inbound.InboundNumber)
		assert.Equal(t, InboundStatusScheduled, inbound.Status)
		assert.Nil(t, inbound.ArrivalDate)
	})

	t.Run("fails without inbound number", func(t *testing.T) {
		inbound, err := NewInbound(supplierID, "", time.Now())

		assert.Error(t, err)
		assert.Nil(t, inbound)
	})

	t.Run("fails without expected date", func(t *testing.T) {
		inbound, err := NewInbound(supplierID, "IN-001", time.Time{})

		assert.Error(t, err)
		assert.Nil(t, inbound)
	})
}

func TestInboundRecordArrival(t *testing.T) {
	inbound, err := NewInbound(uuid.New(), "IN-001", time.Now())
	require.NoError(t, err)

	line, err := inbound.AddItem(uuid.New(), 10, "")
	require.NoError(t, err)

	t.Run("records received quantities", func(t *testing.T) {
		arrival := time.Now()
		err := inbound.RecordArrival(arrival, map[uuid.UUID]int{line.ID: 8})

		require.NoError(t, err)
		assert.Equal(t, InboundStatusArrived, inbound.Status)
		require.NotNil(t, inbound.ArrivalDate)
		assert.Equal(t, 8, inbound.Items[0].ReceivedQuantity)
	})

	t.Run("fails for unknown line", func(t *testing.T) {
		err := inbound.RecordArrival(time.Now(), map[uuid.UUID]int{uuid.New(): 1})

		assert.Error(t, err)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		err := inbound.RecordArrival(time.Now(), map[uuid.UUID]int{line.ID: -1})

		assert.Error(t, err)
	})
}

func TestInboundRemoveItem(t *testing.T) {
	inbound, err := NewInbound(uuid.New(), "IN-001", time.Now())
	require.NoError(t, err)

	line, err := inbound.AddItem(uuid.New(), 5, "")
	require.NoError(t, err)

	require.NoError(t, inbound.RemoveItem(line.ID))
	assert.Empty(t, inbound.Items)
	assert.Error(t, inbound.RemoveItem(line.ID))
}

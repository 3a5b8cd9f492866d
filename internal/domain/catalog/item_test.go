package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("creates item with default unit", func(t *testing.T) {
		item, err := NewItem("ITEM001", "Widget", decimal.NewFromInt(500))

		require.NoError(t, err)
		assert.Equal(t, "ITEM001", item.Code)
		assert.Equal(t, "Widget", item.Name)
		assert.Equal(t, DefaultUnit, item.Unit)
		assert.True(t, item.UnitPrice.Equal(decimal.NewFromInt(500)))
		assert.True(t, item.IsActive)
	})

	t.Run("fails with negative price", func(t *testing.T) {
		item, err := NewItem("ITEM001", "Widget", decimal.NewFromInt(-1))

		assert.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("fails with empty code", func(t *testing.T) {
		item, err := NewItem("", "Widget", decimal.NewFromInt(500))

		assert.Error(t, err)
		assert.Nil(t, item)
	})
}

func TestItemStock(t *testing.T) {
	item, err := NewItem("ITEM001", "Widget", decimal.NewFromInt(500))
	require.NoError(t, err)

	require.NoError(t, item.SetMinStock(10))
	require.NoError(t, item.SetCurrentStock(5))
	assert.True(t, item.IsBelowMinStock())

	require.NoError(t, item.SetCurrentStock(20))
	assert.False(t, item.IsBelowMinStock())

	assert.Error(t, item.SetCurrentStock(-1))
	assert.Error(t, item.SetMinStock(-1))
}

func TestItemSetUnit(t *testing.T) {
	item, err := NewItem("ITEM001", "Widget", decimal.NewFromInt(500))
	require.NoError(t, err)

	require.NoError(t, item.SetUnit("箱"))
	assert.Equal(t, "箱", item.Unit)

	assert.Error(t, item.SetUnit(""))
	assert.Equal(t, "箱", item.Unit)
}

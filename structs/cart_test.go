package structs

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/luanmendes74/menu-flow-saas/structs/tables"
)

func catalogWith(prices map[uuid.UUID]uint64) map[uuid.UUID]*tables.Product {
	catalog := make(map[uuid.UUID]*tables.Product, len(prices))
	for id, price := range prices {
		catalog[id] = &tables.Product{Id: id, Price: price}
	}
	return catalog
}

func TestCart_AddIncrementsExistingLine(t *testing.T) {
	productId := uuid.New()
	cart := NewCart()

	cart.Add(productId)
	cart.Add(productId)

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCart_KeepsInsertionOrder(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	third := uuid.New()

	cart := NewCart()
	cart.Add(first)
	cart.Add(second)
	cart.Add(third)
	cart.Add(second) // bumping quantity must not reorder

	assert.Equal(t, []uuid.UUID{first, second, third}, []uuid.UUID{
		cart.Lines[0].ProductId, cart.Lines[1].ProductId, cart.Lines[2].ProductId,
	})
}

func TestCart_RemoveDecrementsAndPrunes(t *testing.T) {
	productId := uuid.New()
	cart := NewCart()
	cart.Add(productId)
	cart.Add(productId)

	cart.Remove(productId)
	assert.Equal(t, 1, cart.ItemCount())
	assert.False(t, cart.IsEmpty())

	cart.Remove(productId)
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Lines)
}

func TestCart_RemoveAbsentProductIsNoOp(t *testing.T) {
	cart := NewCart()
	cart.Add(uuid.New())

	cart.Remove(uuid.New())

	assert.Equal(t, 1, cart.ItemCount())
}

func TestCart_SetNote(t *testing.T) {
	productId := uuid.New()
	cart := NewCart()
	cart.Add(productId)

	cart.SetNote(productId, "sem cebola")
	assert.Equal(t, "sem cebola", cart.Lines[0].Note)

	// setting a note on an absent product changes nothing
	cart.SetNote(uuid.New(), "extra")
	assert.Len(t, cart.Lines, 1)
}

func TestCart_Total(t *testing.T) {
	burger := uuid.New()
	soda := uuid.New()

	tests := []struct {
		name     string
		build    func() *Cart
		catalog  map[uuid.UUID]*tables.Product
		expected uint64
	}{
		{
			name:     "empty cart totals zero",
			build:    NewCart,
			catalog:  catalogWith(map[uuid.UUID]uint64{burger: 1000}),
			expected: 0,
		},
		{
			name: "two burgers and a soda",
			build: func() *Cart {
				c := NewCart()
				c.Add(burger)
				c.Add(burger)
				c.Add(soda)
				return c
			},
			catalog:  catalogWith(map[uuid.UUID]uint64{burger: 1000, soda: 500}),
			expected: 2500,
		},
		{
			name: "missing product contributes nothing",
			build: func() *Cart {
				c := NewCart()
				c.Add(burger)
				c.Add(soda)
				return c
			},
			catalog:  catalogWith(map[uuid.UUID]uint64{burger: 1000}),
			expected: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := tt.build()
			assert.Equal(t, tt.expected, cart.Total(tt.catalog))
		})
	}
}

func TestCart_ItemCountSumsQuantities(t *testing.T) {
	burger := uuid.New()
	soda := uuid.New()

	cart := NewCart()
	cart.Add(burger)
	cart.Add(burger)
	cart.Add(soda)

	assert.Equal(t, 3, cart.ItemCount())
}

package cart

import (
	"math/rand"
	"testing"

	"github.com/aaravmahajanofficial/turbokart-storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nighthawk() models.LineItemInput {
	return models.LineItemInput{
		ID:                "nighthawk-Black-Standard-0",
		Name:              "Nighthawk",
		UnitPrice:         models.Dollars(279),
		OriginalUnitPrice: models.Dollars(559),
		Image:             "/images/products/nighthawk.jpg",
		Color:             "Stealth Black",
		Tires:             "Standard Grip",
		AddOns:            []models.AddOn{},
	}
}

func viperWithAddOns() models.LineItemInput {
	return models.LineItemInput{
		ID:                "viper-x-Carbon-Pro-2",
		Name:              "Viper X",
		UnitPrice:         models.Dollars(549),
		OriginalUnitPrice: models.Dollars(1099),
		Color:             "Carbon Fiber",
		Tires:             "Pro Racing",
		AddOns: []models.AddOn{
			{Name: "Racing Harness", Price: models.Dollars(49)},
			{Name: "Smartphone Mount", Price: models.Dollars(19)},
		},
	}
}

func apply(state models.CartState, actions ...Action) models.CartState {
	for _, a := range actions {
		state = Reduce(state, a)
	}

	return state
}

func TestReduce(t *testing.T) {

	t.Run("Success - Add Same Item Twice Increments Quantity", func(t *testing.T) {
		// Act
		state := apply(Empty(), AddItem{Item: nighthawk()}, AddItem{Item: nighthawk()})

		// Assert
		require.Len(t, state.Items, 1)
		assert.Equal(t, 2, state.Items[0].Quantity)
		assert.Equal(t, models.Dollars(558), state.Total)
		assert.Equal(t, 2, state.ItemCount)
	})

	t.Run("Success - Update Quantity To Zero Removes Item", func(t *testing.T) {
		// Arrange
		state := apply(Empty(), AddItem{Item: nighthawk()}, AddItem{Item: nighthawk()})

		// Act
		state = Reduce(state, UpdateQuantity{ID: "nighthawk-Black-Standard-0", Quantity: 0})

		// Assert
		assert.Empty(t, state.Items)
		assert.Equal(t, models.Money(0), state.Total)
		assert.Equal(t, 0, state.ItemCount)
	})

	t.Run("Success - Negative Quantity Behaves Like Zero", func(t *testing.T) {
		// Arrange
		base := apply(Empty(), AddItem{Item: nighthawk()}, AddItem{Item: viperWithAddOns()})

		// Act
		negative := Reduce(base, UpdateQuantity{ID: nighthawk().ID, Quantity: -3})
		zero := Reduce(base, UpdateQuantity{ID: nighthawk().ID, Quantity: 0})

		// Assert
		assert.Equal(t, zero, negative)
		require.Len(t, negative.Items, 1)
		assert.Equal(t, viperWithAddOns().ID, negative.Items[0].ID)
	})

	t.Run("Success - Huge Quantity Is Capped", func(t *testing.T) {
		// Arrange
		base := Reduce(Empty(), AddItem{Item: nighthawk()})

		// Act
		state := Reduce(base, UpdateQuantity{ID: nighthawk().ID, Quantity: 400_000_000_000_000})

		// Assert
		require.Len(t, state.Items, 1)
		assert.Equal(t, models.MaxLineQuantity, state.Items[0].Quantity)
		assert.Equal(t, models.Dollars(279*models.MaxLineQuantity), state.Total)
		assert.Positive(t, state.Total)
	})

	t.Run("Success - Adding Past The Cap Keeps The Cap", func(t *testing.T) {
		// Arrange
		base := apply(Empty(), AddItem{Item: nighthawk()}, UpdateQuantity{ID: nighthawk().ID, Quantity: models.MaxLineQuantity})

		// Act
		state := Reduce(base, AddItem{Item: nighthawk()})

		// Assert
		assert.Equal(t, models.MaxLineQuantity, state.Items[0].Quantity)
		assert.Equal(t, models.MaxLineQuantity, state.ItemCount)
	})

	t.Run("Success - Add-Ons Are Priced Per Unit", func(t *testing.T) {
		// Act
		state := apply(Empty(), AddItem{Item: viperWithAddOns()}, UpdateQuantity{ID: viperWithAddOns().ID, Quantity: 3})

		// Assert
		assert.Equal(t, models.Dollars((549+49+19)*3), state.Total)
		assert.Equal(t, 3, state.ItemCount)
	})

	t.Run("Success - Original Price Never Affects Total", func(t *testing.T) {
		// Act
		state := Reduce(Empty(), AddItem{Item: nighthawk()})

		// Assert
		assert.Equal(t, models.Dollars(279), state.Total)
		assert.Equal(t, models.Dollars(559), state.Items[0].LineOriginalTotal())
	})

	t.Run("Success - Remove Absent Item Is No-op", func(t *testing.T) {
		// Arrange
		state := Reduce(Empty(), AddItem{Item: nighthawk()})

		// Act
		after := Reduce(state, RemoveItem{ID: "missing"})

		// Assert
		assert.Equal(t, state, after)
	})

	t.Run("Success - Update Quantity Of Absent Item Is No-op", func(t *testing.T) {
		// Arrange
		state := Reduce(Empty(), AddItem{Item: nighthawk()})

		// Act
		after := Reduce(state, UpdateQuantity{ID: "missing", Quantity: 5})

		// Assert
		assert.Equal(t, state, after)
	})

	t.Run("Success - Insertion Order Is Preserved", func(t *testing.T) {
		// Act
		state := apply(Empty(), AddItem{Item: viperWithAddOns()}, AddItem{Item: nighthawk()}, AddItem{Item: viperWithAddOns()})

		// Assert
		require.Len(t, state.Items, 2)
		assert.Equal(t, viperWithAddOns().ID, state.Items[0].ID)
		assert.Equal(t, nighthawk().ID, state.Items[1].ID)
	})

	t.Run("Success - Clear Keeps Drawer Visibility", func(t *testing.T) {
		// Arrange
		state := apply(Empty(), OpenCart{}, AddItem{Item: nighthawk()}, AddItem{Item: viperWithAddOns()})

		// Act
		state = Reduce(state, ClearCart{})

		// Assert
		assert.Empty(t, state.Items)
		assert.NotNil(t, state.Items)
		assert.Equal(t, models.Money(0), state.Total)
		assert.Equal(t, 0, state.ItemCount)
		assert.True(t, state.IsOpen)
	})

	t.Run("Success - Drawer Actions Only Touch Visibility", func(t *testing.T) {
		// Arrange
		state := Reduce(Empty(), AddItem{Item: nighthawk()})

		// Act
		toggled := Reduce(state, ToggleCart{})
		closed := Reduce(toggled, CloseCart{})
		opened := Reduce(closed, OpenCart{})
		toggledBack := Reduce(opened, ToggleCart{})

		// Assert
		assert.True(t, toggled.IsOpen)
		assert.False(t, closed.IsOpen)
		assert.True(t, opened.IsOpen)
		assert.False(t, toggledBack.IsOpen)
		for _, s := range []models.CartState{toggled, closed, opened, toggledBack} {
			assert.Equal(t, state.Items, s.Items)
			assert.Equal(t, state.Total, s.Total)
		}
	})

	t.Run("Success - Input State Is Not Modified", func(t *testing.T) {
		// Arrange
		state := Reduce(Empty(), AddItem{Item: nighthawk()})

		// Act
		_ = Reduce(state, AddItem{Item: nighthawk()})

		// Assert
		assert.Equal(t, 1, state.Items[0].Quantity)
	})
}

func TestReduceDerivedFieldsAlwaysRecomputed(t *testing.T) {

	items := []models.LineItemInput{nighthawk(), viperWithAddOns(), {
		ID:        "trackhawk-Cobalt-AllTerrain-1",
		Name:      "Trackhawk",
		UnitPrice: models.Dollars(399),
		AddOns:    []models.AddOn{{Name: "Performance Spoiler", Price: models.Dollars(59)}},
	}}

	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		state := Empty()

		for step := 0; step < 30; step++ {
			item := items[rng.Intn(len(items))]

			var action Action
			switch rng.Intn(4) {
			case 0, 1:
				action = AddItem{Item: item}
			case 2:
				action = RemoveItem{ID: item.ID}
			default:
				action = UpdateQuantity{ID: item.ID, Quantity: rng.Intn(8) - 3}
			}

			state = Reduce(state, action)

			var total models.Money
			count := 0
			seen := map[string]bool{}
			for _, it := range state.Items {
				require.False(t, seen[it.ID], "duplicate line item %s", it.ID)
				seen[it.ID] = true
				require.Positive(t, it.Quantity)

				addOns := models.Money(0)
				for _, a := range it.AddOns {
					addOns += a.Price
				}
				total += (it.UnitPrice + addOns) * models.Money(it.Quantity)
				count += it.Quantity
			}

			require.Equal(t, total, state.Total)
			require.Equal(t, count, state.ItemCount)
		}
	}
}

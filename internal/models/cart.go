package models

type AddOn struct {
	Name  string `json:"name"`
	Price Money  `json:"price"`
}

// CartLineItem is one product configuration in the cart. Color, tires and
// add-ons are fixed when the item is added; only Quantity changes afterwards.
type CartLineItem struct {
	ID                string  `json:"id"`
	Slug              string  `json:"slug,omitempty"`
	Name              string  `json:"name"`
	UnitPrice         Money   `json:"unit_price"`
	OriginalUnitPrice Money   `json:"original_unit_price"`
	Image             string  `json:"image"`
	Color             string  `json:"color"`
	Tires             string  `json:"tires"`
	AddOns            []AddOn `json:"add_ons"`
	Quantity          int     `json:"quantity"`
}

// LineItemInput is a CartLineItem before it enters the cart; the cart
// assigns the quantity.
type LineItemInput struct {
	ID                string  `json:"id"`
	Slug              string  `json:"slug,omitempty"`
	Name              string  `json:"name"`
	UnitPrice         Money   `json:"unit_price"`
	OriginalUnitPrice Money   `json:"original_unit_price"`
	Image             string  `json:"image"`
	Color             string  `json:"color"`
	Tires             string  `json:"tires"`
	AddOns            []AddOn `json:"add_ons"`
}

func (in LineItemInput) WithQuantity(quantity int) CartLineItem {
	addOns := make([]AddOn, len(in.AddOns))
	copy(addOns, in.AddOns)

	return CartLineItem{
		ID:                in.ID,
		Slug:              in.Slug,
		Name:              in.Name,
		UnitPrice:         in.UnitPrice,
		OriginalUnitPrice: in.OriginalUnitPrice,
		Image:             in.Image,
		Color:             in.Color,
		Tires:             in.Tires,
		AddOns:            addOns,
		Quantity:          quantity,
	}
}

// AddOnTotal is the per-unit price of the selected add-ons.
func (i CartLineItem) AddOnTotal() Money {
	var sum Money
	for _, a := range i.AddOns {
		sum += a.Price
	}

	return sum
}

func (i CartLineItem) LineTotal() Money {
	return (i.UnitPrice + i.AddOnTotal()) * Money(i.Quantity)
}

// LineOriginalTotal is the struck-through price shown next to a discount.
func (i CartLineItem) LineOriginalTotal() Money {
	return (i.OriginalUnitPrice + i.AddOnTotal()) * Money(i.Quantity)
}

type CartState struct {
	Items     []CartLineItem `json:"items"`
	Total     Money          `json:"total"`
	ItemCount int            `json:"item_count"`
	IsOpen    bool           `json:"is_open"`
}

type AddCartItemRequest struct {
	Slug   string   `json:"slug" validate:"required"`
	Color  string   `json:"color" validate:"required"`
	Tire   string   `json:"tire" validate:"required"`
	AddOns []string `json:"add_ons" validate:"omitempty,dive,required"`
}

// MaxLineQuantity bounds the quantity of one cart line. Keep the max= tag on
// UpdateQuantityRequest in sync.
const MaxLineQuantity = 99

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,max=99"`
}

type CartDrawerRequest struct {
	Action string `json:"action" validate:"required,oneof=toggle open close"`
}

package cart

import "github.com/aaravmahajanofficial/turbokart-storefront/internal/models"

// Action is one transition of the cart. The set is closed: only types in this
// package implement it.
type Action interface {
	isAction()
}

type AddItem struct {
	Item models.LineItemInput
}

type RemoveItem struct {
	ID string
}

type UpdateQuantity struct {
	ID       string
	Quantity int
}

type ClearCart struct{}

type ToggleCart struct{}

type OpenCart struct{}

type CloseCart struct{}

func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (ClearCart) isAction()      {}
func (ToggleCart) isAction()     {}
func (OpenCart) isAction()       {}
func (CloseCart) isAction()      {}

// Reduce returns the state after applying action. The input state is not
// modified. Total and ItemCount are always recomputed from the full item list.
func Reduce(state models.CartState, action Action) models.CartState {

	next := models.CartState{
		Items:  cloneItems(state.Items),
		IsOpen: state.IsOpen,
	}

	switch a := action.(type) {
	case AddItem:
		idx := indexOf(next.Items, a.Item.ID)
		if idx >= 0 {
			next.Items[idx].Quantity = min(next.Items[idx].Quantity+1, models.MaxLineQuantity)
		} else {
			next.Items = append(next.Items, a.Item.WithQuantity(1))
		}

	case RemoveItem:
		next.Items = without(next.Items, a.ID)

	case UpdateQuantity:
		quantity := min(max(0, a.Quantity), models.MaxLineQuantity)
		if quantity == 0 {
			next.Items = without(next.Items, a.ID)
			break
		}

		if idx := indexOf(next.Items, a.ID); idx >= 0 {
			next.Items[idx].Quantity = quantity
		}

	case ClearCart:
		next.Items = []models.CartLineItem{}

	case ToggleCart:
		next.IsOpen = !next.IsOpen

	case OpenCart:
		next.IsOpen = true

	case CloseCart:
		next.IsOpen = false
	}

	return recompute(next)
}

// Empty is the state a cart starts from.
func Empty() models.CartState {
	return models.CartState{Items: []models.CartLineItem{}}
}

func recompute(state models.CartState) models.CartState {

	var total models.Money
	count := 0

	for _, item := range state.Items {
		total += item.LineTotal()
		count += item.Quantity
	}

	state.Total = total
	state.ItemCount = count

	return state
}

func indexOf(items []models.CartLineItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}

	return -1
}

func without(items []models.CartLineItem, id string) []models.CartLineItem {
	out := items[:0]
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}

	return out
}

func cloneItems(items []models.CartLineItem) []models.CartLineItem {
	out := make([]models.CartLineItem, len(items))
	for i, item := range items {
		out[i] = item
		out[i].AddOns = make([]models.AddOn, len(item.AddOns))
		copy(out[i].AddOns, item.AddOns)
	}

	return out
}

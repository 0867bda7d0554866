package cart

import "hunargaatha-storefront/internal/domain"

// ActionKind enumerates cart transitions.
type ActionKind int

const (
	ActionAddItem ActionKind = iota
	ActionRemoveItem
	ActionUpdateQuantity
	ActionClear
)

// Action is one requested transition. Product is consulted only by
// ActionAddItem; ProductID and Quantity as each kind requires.
type Action struct {
	Kind      ActionKind
	Product   domain.Product
	ProductID string
	Quantity  int
}

// Reduce applies an action to a cart and returns the next cart. It never
// mutates its input, keeps at most one line per product id, and drops any
// line whose quantity would fall to zero or below.
func Reduce(cart domain.Cart, action Action) domain.Cart {
	switch action.Kind {
	case ActionAddItem:
		return reduceAdd(cart, action.Product, action.Quantity)
	case ActionRemoveItem:
		return reduceRemove(cart, action.ProductID)
	case ActionUpdateQuantity:
		if action.Quantity <= 0 {
			return reduceRemove(cart, action.ProductID)
		}
		return reduceSetQuantity(cart, action.ProductID, action.Quantity)
	case ActionClear:
		return domain.Cart{}
	default:
		return cart
	}
}

func reduceAdd(cart domain.Cart, product domain.Product, quantity int) domain.Cart {
	if quantity <= 0 {
		quantity = 1
	}
	next := cloneLines(cart.Items)
	for i, line := range next {
		if line.ProductID == product.ID {
			next[i].Quantity = line.Quantity + quantity
			return domain.Cart{Items: next}
		}
	}
	next = append(next, domain.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  quantity,
	})
	return domain.Cart{Items: next}
}

func reduceRemove(cart domain.Cart, productID string) domain.Cart {
	next := make([]domain.CartLine, 0, len(cart.Items))
	for _, line := range cart.Items {
		if line.ProductID != productID {
			next = append(next, line)
		}
	}
	return domain.Cart{Items: next}
}

func reduceSetQuantity(cart domain.Cart, productID string, quantity int) domain.Cart {
	next := cloneLines(cart.Items)
	for i, line := range next {
		if line.ProductID == productID {
			next[i].Quantity = quantity
		}
	}
	return domain.Cart{Items: next}
}

func cloneLines(lines []domain.CartLine) []domain.CartLine {
	next := make([]domain.CartLine, len(lines))
	copy(next, lines)
	return next
}

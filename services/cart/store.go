package cart

import (
	"fmt"

	"solarcare/models"

	"github.com/shopspring/decimal"
)

// Listener is notified with a fresh snapshot after every cart mutation.
type Listener func(models.CartSnapshot)

// Store holds the line items and applied offers of one cart.
// It is not safe for concurrent use; callers serialize access.
type Store struct {
	items     []models.CartLineItem
	offers    []models.AppliedOffer
	listeners []Listener
}

func NewStore() *Store {
	return &Store{}
}

// Subscribe registers fn to receive a snapshot after each mutation.
func (s *Store) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// AddItem increments the quantity of an existing entry with the same ID,
// or appends item with quantity 1.
func (s *Store) AddItem(item models.CartLineItem) {
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity++
			s.notify()
			return
		}
	}
	item.Quantity = 1
	s.items = append(s.items, item)
	s.notify()
}

// CheckSystemSize reports whether adding the line id with size would merge into
// an existing line that carries a different size. An empty size never
// conflicts. Size is a line attribute, so a different size is changed through
// UpdateItemAttribute rather than by adding again.
func (s *Store) CheckSystemSize(id, size string) error {
	if size == "" {
		return nil
	}
	for _, it := range s.items {
		if it.ID == id && it.SystemSize != size {
			return fmt.Errorf("%w: %s has %q, requested %q", ErrSystemSizeConflict, id, it.SystemSize, size)
		}
	}
	return nil
}

// RemoveItem deletes the entry with the given ID. Unknown IDs are ignored.
func (s *Store) RemoveItem(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.notify()
			return
		}
	}
}

// UpdateItemAttribute changes a non-price field of the entry with the given ID.
// Unknown IDs are ignored; fields that would affect pricing are rejected.
func (s *Store) UpdateItemAttribute(id, field, value string) error {
	set, ok := attributeSetters[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedAttribute, field)
	}
	for i := range s.items {
		if s.items[i].ID == id {
			set(&s.items[i], value)
			s.notify()
			return nil
		}
	}
	return nil
}

var attributeSetters = map[string]func(*models.CartLineItem, string){
	models.AttrSystemSize: func(it *models.CartLineItem, v string) { it.SystemSize = v },
	models.AttrDetails:    func(it *models.CartLineItem, v string) { it.Details = v },
	models.AttrTitle:      func(it *models.CartLineItem, v string) { it.Title = v },
	models.AttrImage:      func(it *models.CartLineItem, v string) { it.Image = v },
}

// ApplyOffer attaches offer to the cart once per offer ID.
func (s *Store) ApplyOffer(offer models.AppliedOffer) error {
	for _, o := range s.offers {
		if o.ID == offer.ID {
			return fmt.Errorf("%w: %s", ErrOfferAlreadyApplied, offer.ID)
		}
	}
	s.offers = append(s.offers, offer)
	s.notify()
	return nil
}

// RemoveOffer detaches the offer with the given ID, if present.
func (s *Store) RemoveOffer(id string) {
	for i := range s.offers {
		if s.offers[i].ID == id {
			s.offers = append(s.offers[:i], s.offers[i+1:]...)
			s.notify()
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.items = nil
	s.offers = nil
	s.notify()
}

func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) TotalQuantity() int {
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is recomputed from the current items on every call.
func (s *Store) TotalPrice() float64 {
	return LineTotal(s.items)
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []models.CartLineItem {
	out := make([]models.CartLineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Offers returns a copy of the applied offers.
func (s *Store) Offers() []models.AppliedOffer {
	out := make([]models.AppliedOffer, len(s.offers))
	copy(out, s.offers)
	return out
}

// Snapshot returns a value copy of the cart that later mutations cannot alter.
func (s *Store) Snapshot() models.CartSnapshot {
	return models.CartSnapshot{
		Items:         s.Items(),
		Offers:        s.Offers(),
		TotalQuantity: s.TotalQuantity(),
		TotalPrice:    s.TotalPrice(),
	}
}

func (s *Store) notify() {
	if len(s.listeners) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, fn := range s.listeners {
		fn(snap)
	}
}

// LineTotal sums price * quantity over items in decimal arithmetic.
func LineTotal(items []models.CartLineItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum.InexactFloat64()
}

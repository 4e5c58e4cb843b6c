// File: solarcare/models/cart.go
package models

// CartLineItem is one service package in the cart, keyed by ID.
type CartLineItem struct {
	ID         string  `bson:"id" json:"id"`                                       // Catalog package ID, aggregation key
	Title      string  `bson:"title" json:"title"`                                 // Display name
	Price      float64 `bson:"price" json:"price"`                                 // Unit price in rupees
	Image      string  `bson:"image,omitempty" json:"image,omitempty"`             // Opaque image reference
	Quantity   int     `bson:"quantity" json:"quantity"`                           // Always >= 1
	SystemSize string  `bson:"systemSize,omitempty" json:"systemSize,omitempty"`   // kW rating, does not affect price
	Details    string  `bson:"details,omitempty" json:"details,omitempty"`         // Free-form descriptor
}

// AppliedOffer is a promotion attached to a cart.
type AppliedOffer struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Discount    string `bson:"discount" json:"discount"` // Display string, e.g. "20% OFF"
	Description string `bson:"description" json:"description"`
}

// CartSnapshot is a value copy of the cart at one point in time.
type CartSnapshot struct {
	Items         []CartLineItem `json:"items"`
	Offers        []AppliedOffer `json:"offers"`
	TotalQuantity int            `json:"totalQuantity"`
	TotalPrice    float64        `json:"totalPrice"`
}

// Attribute names accepted by a cart attribute update.
const (
	AttrSystemSize = "systemSize"
	AttrDetails    = "details"
	AttrTitle      = "title"
	AttrImage      = "image"
)

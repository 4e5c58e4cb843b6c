package models

// Service categories shown in the catalog.
const (
	CategoryCleaning    = "Cleaning"
	CategoryMaintenance = "Maintenance"
	CategoryInspection  = "Inspection"
)

// ServicePackage is a bookable catalog entry.
type ServicePackage struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Details     string   `json:"details"`
	SystemSizes []string `json:"systemSizes,omitempty"`
	AddOns      []AddOn  `json:"addOns,omitempty"`
}

// AddOn is an optional extra that can be bundled into a package line item.
type AddOn struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// Offer is a promotion listed in the catalog.
type Offer struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Discount    string `json:"discount"`
	Description string `json:"description"`
}

// ScheduleDay lists the bookable time slots of one day.
type ScheduleDay struct {
	Date  string   `json:"date"`  // YYYY-MM-DD
	Label string   `json:"label"` // e.g. "Mon, Jan 2"
	Slots []string `json:"slots"` // e.g. "10:00 AM"
}

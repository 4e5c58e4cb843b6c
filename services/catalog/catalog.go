package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"solarcare/models"

	"github.com/shopspring/decimal"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrAddOnNotFound   = errors.New("add-on not found")
	ErrOfferNotFound   = errors.New("offer not found")
	ErrInvalidSize     = errors.New("system size not offered for this service")
)

var standardSizes = []string{"1-3 kW", "3-5 kW", "5-10 kW", "10+ kW"}

var cleaningAddOns = []models.AddOn{
	{ID: "bird-mesh", Title: "Bird Mesh Installation", Price: 1499},
	{ID: "anti-soiling", Title: "Anti-Soiling Coating", Price: 899},
	{ID: "hard-water", Title: "Hard Water Stain Removal", Price: 499},
}

// prices are in rupees
var packages = []models.ServicePackage{
	{
		ID:          "basic-clean",
		Title:       "Basic Panel Cleaning",
		Category:    models.CategoryCleaning,
		Price:       499,
		Image:       "basic_clean.png",
		Details:     "Dry dusting and water rinse of all panels",
		SystemSizes: standardSizes,
		AddOns:      cleaningAddOns,
	},
	{
		ID:          "deep-clean",
		Title:       "Deep Cleaning",
		Category:    models.CategoryCleaning,
		Price:       999,
		Image:       "deep_clean.png",
		Details:     "Soft-brush scrub with demineralized water and frame wipe-down",
		SystemSizes: standardSizes,
		AddOns:      cleaningAddOns,
	},
	{
		ID:          "amc-quarterly",
		Title:       "Quarterly Cleaning AMC",
		Category:    models.CategoryMaintenance,
		Price:       3499,
		Image:       "amc.png",
		Details:     "Four scheduled deep cleans over twelve months",
		SystemSizes: standardSizes,
		AddOns:      cleaningAddOns[:1],
	},
	{
		ID:       "inverter-check",
		Title:    "Inverter Health Check",
		Category: models.CategoryMaintenance,
		Price:    699,
		Image:    "inverter.png",
		Details:  "Error log review, firmware check and connection tightening",
	},
	{
		ID:          "performance-audit",
		Title:       "Generation Performance Audit",
		Category:    models.CategoryInspection,
		Price:       1299,
		Image:       "audit.png",
		Details:     "Thermal scan, string voltage test and yield report",
		SystemSizes: standardSizes,
	},
}

var offers = []models.Offer{
	{ID: "FIRST100", Title: "First Booking", Discount: "₹100 OFF", Description: "Flat ₹100 off on your first cleaning"},
	{ID: "MONSOON20", Title: "Monsoon Saver", Discount: "20% OFF", Description: "20% off deep cleaning during monsoon"},
	{ID: "AMC10", Title: "AMC Bonus", Discount: "10% OFF", Description: "10% off any annual maintenance contract"},
}

// DefaultSlots are the visit windows offered each day.
var DefaultSlots = []string{"08:00 AM", "10:00 AM", "12:00 PM", "02:00 PM", "04:00 PM"}

// Catalog serves the static service list, offers and schedule slots.
type Catalog struct {
	Now      func() time.Time
	SlotDays int
}

func New(slotDays int) *Catalog {
	if slotDays <= 0 {
		slotDays = 7
	}
	return &Catalog{Now: time.Now, SlotDays: slotDays}
}

// Services lists packages, optionally filtered by category (case-insensitive).
func (c *Catalog) Services(category string) []models.ServicePackage {
	out := make([]models.ServicePackage, 0, len(packages))
	for _, p := range packages {
		if category != "" && !strings.EqualFold(category, p.Category) {
			continue
		}
		out = append(out, clonePackage(p))
	}
	return out
}

func (c *Catalog) Service(id string) (*models.ServicePackage, error) {
	for _, p := range packages {
		if p.ID == id {
			cp := clonePackage(p)
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
}

func (c *Catalog) Offers() []models.Offer {
	return append([]models.Offer(nil), offers...)
}

func (c *Catalog) Offer(id string) (*models.AppliedOffer, error) {
	for _, o := range offers {
		if strings.EqualFold(o.ID, id) {
			return &models.AppliedOffer{ID: o.ID, Title: o.Title, Discount: o.Discount, Description: o.Description}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrOfferNotFound, id)
}

// LineItem builds a cart line item for a package customized with a system
// size and add-ons. Each distinct add-on combination gets its own ID so the
// cart aggregates identical configurations only.
func (c *Catalog) LineItem(serviceID, systemSize string, addOnIDs []string) (models.CartLineItem, error) {
	p, err := c.Service(serviceID)
	if err != nil {
		return models.CartLineItem{}, err
	}
	if systemSize != "" && len(p.SystemSizes) > 0 && !contains(p.SystemSizes, systemSize) {
		return models.CartLineItem{}, fmt.Errorf("%w: %s", ErrInvalidSize, systemSize)
	}

	ids := dedupe(addOnIDs)
	sort.Strings(ids)

	price := decimal.NewFromFloat(p.Price)
	titles := make([]string, 0, len(ids))
	for _, id := range ids {
		a, ok := findAddOn(p.AddOns, id)
		if !ok {
			return models.CartLineItem{}, fmt.Errorf("%w: %s for %s", ErrAddOnNotFound, id, serviceID)
		}
		price = price.Add(decimal.NewFromFloat(a.Price))
		titles = append(titles, a.Title)
	}

	item := models.CartLineItem{
		ID:         p.ID,
		Title:      p.Title,
		Price:      price.InexactFloat64(),
		Image:      p.Image,
		SystemSize: systemSize,
		Details:    p.Details,
	}
	if len(ids) > 0 {
		item.ID = p.ID + "+" + strings.Join(ids, "+")
		item.Details = "Add-ons: " + strings.Join(titles, ", ")
	}
	return item, nil
}

// Schedule lists bookable days starting tomorrow.
func (c *Catalog) Schedule() []models.ScheduleDay {
	start := c.Now().AddDate(0, 0, 1)
	days := make([]models.ScheduleDay, 0, c.SlotDays)
	for i := 0; i < c.SlotDays; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, models.ScheduleDay{
			Date:  d.Format("2006-01-02"),
			Label: d.Format("Mon, Jan 2"),
			Slots: append([]string(nil), DefaultSlots...),
		})
	}
	return days
}

func clonePackage(p models.ServicePackage) models.ServicePackage {
	p.SystemSizes = append([]string(nil), p.SystemSizes...)
	p.AddOns = append([]models.AddOn(nil), p.AddOns...)
	return p
}

func findAddOn(list []models.AddOn, id string) (models.AddOn, bool) {
	for _, a := range list {
		if a.ID == id {
			return a, true
		}
	}
	return models.AddOn{}, false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

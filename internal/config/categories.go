package config

import (
	"sort"

	"github.com/theirongolddev/lumina/internal/model"
)

// OtherCategory is shown for identifiers missing from the catalog.
var OtherCategory = model.Category{ID: "other", Name: "Other", Icon: "help-circle", Color: "#94a3b8"}

// DefaultCategories is the built-in catalog in display order.
var DefaultCategories = []model.Category{
	{ID: "rent", Name: "Rent & Housing", Icon: "home", Color: "#22d3ee"},
	{ID: "streaming", Name: "Streaming & Apps", Icon: "music", Color: "#e879f9"},
	{ID: "travel", Name: "Travel", Icon: "plane", Color: "#facc15"},
	{ID: "food", Name: "Food", Icon: "coffee", Color: "#fb923c"},
	{ID: "shopping", Name: "Shopping", Icon: "shopping-bag", Color: "#f472b6"},
	{ID: "utilities", Name: "Utilities", Icon: "zap", Color: "#fde047"},
	{ID: "transport", Name: "Transport", Icon: "car", Color: "#f87171"},
	{ID: "internet", Name: "Internet & Phone", Icon: "wifi", Color: "#60a5fa"},
	{ID: "salary", Name: "Salary", Icon: "briefcase", Color: "#34d399"},
	{ID: "health", Name: "Health", Icon: "heart-pulse", Color: "#fb7185"},
	{ID: "entertainment", Name: "Entertainment", Icon: "gamepad", Color: "#a78bfa"},
}

var methodLabels = map[model.PaymentMethod]string{
	model.MethodCreditCard: "Credit",
	model.MethodDebitCard:  "Debit",
	model.MethodPix:        "Pix",
	model.MethodCash:       "Cash",
	model.MethodOther:      "Other",
}

// PaymentMethodLabel returns the display label for m.
func PaymentMethodLabel(m model.PaymentMethod) string {
	if l, ok := methodLabels[m]; ok {
		return l
	}
	return m.String()
}

// Catalog resolves category identifiers to display metadata.
type Catalog struct {
	byID  map[string]model.Category
	order []string
}

// NewCatalog merges the built-in categories with the config overrides.
// Overrides for unknown ids add new categories after the built-ins, sorted
// by id.
func NewCatalog(cfg Config) *Catalog {
	c := &Catalog{byID: make(map[string]model.Category, len(DefaultCategories))}
	for _, cat := range DefaultCategories {
		c.byID[cat.ID] = cat
		c.order = append(c.order, cat.ID)
	}

	var added []string
	for id, o := range cfg.Categories.Overrides {
		cat, ok := c.byID[id]
		if !ok {
			cat = model.Category{ID: id, Name: id, Icon: OtherCategory.Icon, Color: OtherCategory.Color}
			added = append(added, id)
		}
		if o.Name != "" {
			cat.Name = o.Name
		}
		if o.Icon != "" {
			cat.Icon = o.Icon
		}
		if o.Color != "" {
			cat.Color = o.Color
		}
		c.byID[id] = cat
	}
	sort.Strings(added)
	c.order = append(c.order, added...)

	return c
}

// Resolve returns the category for id and whether it is in the catalog.
func (c *Catalog) Resolve(id string) (model.Category, bool) {
	cat, ok := c.byID[id]
	if !ok {
		return OtherCategory, false
	}
	return cat, true
}

// DisplayName returns the category name, or "Other" for unknown ids.
func (c *Catalog) DisplayName(id string) string {
	cat, _ := c.Resolve(id)
	return cat.Name
}

// All returns every category in display order.
func (c *Catalog) All() []model.Category {
	out := make([]model.Category, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

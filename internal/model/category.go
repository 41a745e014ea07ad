package model

// Category is a task category. Users can add their own beyond the
// default seed set.
type Category struct {
	ID        int64
	Name      string
	Color     string
	IsDefault bool
	Order     int
}

// DefaultCategories is seeded into an empty store on first open.
var DefaultCategories = []Category{
	{Name: "Personal", Color: "#8B5CF6", IsDefault: true, Order: 0},
	{Name: "Trabajo", Color: "#3B82F6", IsDefault: true, Order: 1},
	{Name: "Salud", Color: "#10B981", IsDefault: true, Order: 2},
	{Name: "Compras", Color: "#F59E0B", IsDefault: true, Order: 3},
	{Name: "Hogar", Color: "#EC4899", IsDefault: true, Order: 4},
	{Name: "Finanzas", Color: "#6366F1", IsDefault: true, Order: 5},
}

// DefaultCategoryName is used when the assistant creates a task without
// an explicit category.
const DefaultCategoryName = "Personal"

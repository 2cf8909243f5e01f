// Package categories holds the fixed category catalog shared by the store,
// the aggregation engine and the presentation layer.
package categories

import (
	"fmt"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/models"
)

var defaultCategories = []models.Category{
	{ID: 1, Name: "Alimentación", Icon: "food", Color: "#FF6B6B", Kind: models.TransactionKindExpense},
	{ID: 2, Name: "Transporte", Icon: "car", Color: "#4ECDC4", Kind: models.TransactionKindExpense},
	{ID: 3, Name: "Vivienda", Icon: "home", Color: "#95E1D3", Kind: models.TransactionKindExpense},
	{ID: 4, Name: "Servicios", Icon: "flash", Color: "#F38181", Kind: models.TransactionKindExpense},
	{ID: 5, Name: "Salud", Icon: "medical", Color: "#51CF66", Kind: models.TransactionKindExpense},
	{ID: 6, Name: "Educación", Icon: "school", Color: "#6C63FF", Kind: models.TransactionKindExpense},
	{ID: 7, Name: "Entretenimiento", Icon: "game-controller", Color: "#FFA502", Kind: models.TransactionKindExpense},
	{ID: 8, Name: "Compras", Icon: "cart", Color: "#FF6348", Kind: models.TransactionKindExpense},
	{ID: 9, Name: "Ropa", Icon: "shirt", Color: "#A29BFE", Kind: models.TransactionKindExpense},
	{ID: 10, Name: "Tecnología", Icon: "laptop", Color: "#74B9FF", Kind: models.TransactionKindExpense},
	{ID: 11, Name: "Mascotas", Icon: "paw", Color: "#FDCB6E", Kind: models.TransactionKindExpense},
	{ID: 12, Name: "Otros", Icon: "ellipsis-horizontal", Color: "#95A5A6", Kind: models.TransactionKindExpense},
	{ID: 13, Name: "Salario", Icon: "wallet", Color: "#51CF66", Kind: models.TransactionKindIncome},
	{ID: 14, Name: "Bonus", Icon: "gift", Color: "#FFB74D", Kind: models.TransactionKindIncome},
	{ID: 15, Name: "Freelance", Icon: "briefcase", Color: "#6C63FF", Kind: models.TransactionKindIncome},
	{ID: 16, Name: "Inversiones", Icon: "trending-up", Color: "#4ECDC4", Kind: models.TransactionKindIncome},
	{ID: 17, Name: "Venta", Icon: "cash", Color: "#51CF66", Kind: models.TransactionKindIncome},
	{ID: 18, Name: "Otros Ingresos", Icon: "add-circle", Color: "#95A5A6", Kind: models.TransactionKindIncome},
}

// Catalog is an immutable id → Category index. It is safe for concurrent use.
type Catalog struct {
	ordered []models.Category
	byID    map[int]models.Category
}

// New builds a catalog from the given categories. Duplicate ids are rejected.
func New(cats []models.Category) (*Catalog, error) {
	c := &Catalog{
		ordered: make([]models.Category, 0, len(cats)),
		byID:    make(map[int]models.Category, len(cats)),
	}
	for _, cat := range cats {
		if _, dup := c.byID[cat.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %d", cat.ID)
		}
		c.byID[cat.ID] = cat
		c.ordered = append(c.ordered, cat)
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultCategories)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the category with the given id or ErrCategoryNotFound.
func (c *Catalog) Lookup(id int) (models.Category, error) {
	cat, ok := c.byID[id]
	if !ok {
		return models.Category{}, apperrors.ErrCategoryNotFound
	}
	return cat, nil
}

// All returns every category in catalog order.
func (c *Catalog) All() []models.Category {
	out := make([]models.Category, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// ByKind returns the categories of one kind in catalog order.
func (c *Catalog) ByKind(kind models.TransactionKind) []models.Category {
	var out []models.Category
	for _, cat := range c.ordered {
		if cat.Kind == kind {
			out = append(out, cat)
		}
	}
	return out
}

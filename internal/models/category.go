package models

import "fmt"

// Category is a named grouping for materials (e.g. "Produit Chimique").
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Validate checks the boundary invariants before a category enters the store.
func (c *Category) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("le nom de la catégorie est requis")
	}
	return nil
}

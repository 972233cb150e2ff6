package models

import (
	"fmt"
	"time"
)

// OrderStatus describes where a purchase order is in its lifecycle.
type OrderStatus string

const (
	OrderEnAttente OrderStatus = "En attente"
	OrderCommande  OrderStatus = "Commandé"
	OrderRecu      OrderStatus = "Reçu"
	OrderAnnule    OrderStatus = "Annulé"
)

// Valid reports whether s is one of the declared order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderEnAttente, OrderCommande, OrderRecu, OrderAnnule:
		return true
	}
	return false
}

// OrderItem is one line of a purchase order. MaterialName is a snapshot of
// the material's name at ordering time.
type OrderItem struct {
	MaterialID   string `json:"materialId"`
	MaterialName string `json:"materialName"`
	Quantity     int    `json:"quantity"`
}

// Order is a supplier purchase request. When its status transitions into
// "Reçu" the stock of every item's material is increased and an Entrée
// movement is logged, atomically with the status change.
type Order struct {
	ID        string      `json:"id"`
	Supplier  string      `json:"supplier"`
	OrderDate time.Time   `json:"orderDate"`
	Status    OrderStatus `json:"status"`
	Items     []OrderItem `json:"items"`
}

// Validate checks the boundary invariants before an order enters the store.
func (o *Order) Validate() error {
	if o.Supplier == "" {
		return fmt.Errorf("le fournisseur est requis")
	}
	if !o.Status.Valid() {
		return fmt.Errorf("statut de commande inconnu: %s", o.Status)
	}
	if len(o.Items) == 0 {
		return fmt.Errorf("la commande doit contenir au moins un article")
	}
	for i, it := range o.Items {
		if it.Quantity <= 0 {
			return fmt.Errorf("article %d: la quantité doit être positive", i+1)
		}
	}
	return nil
}

package models

import "fmt"

// Room is a named teaching room.
type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Lab is a named laboratory.
type Lab struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Validate checks the boundary invariants before a room enters the store.
func (r *Room) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("le nom de la salle est requis")
	}
	return nil
}

// Validate checks the boundary invariants before a lab enters the store.
func (l *Lab) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("le nom du laboratoire est requis")
	}
	return nil
}

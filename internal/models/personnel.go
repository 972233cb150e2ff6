package models

import "fmt"

// Role enumerates the staff roles known to the lab.
type Role string

const (
	RoleTechnicien Role = "Technicien"
	RoleEnseignant Role = "Enseignant"
)

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return r == RoleTechnicien || r == RoleEnseignant
}

// Personnel is a staff member attached to a lab or subject.
type Personnel struct {
	ID   string `json:"id"`
	Nom  string `json:"nom"`
	Role Role   `json:"role"`
	Labo string `json:"labo"`
}

// Validate checks the boundary invariants before a staff record enters the store.
func (p *Personnel) Validate() error {
	if p.Nom == "" {
		return fmt.Errorf("le nom est requis")
	}
	if !p.Role.Valid() {
		return fmt.Errorf("rôle inconnu: %s", p.Role)
	}
	return nil
}

package models

// RoleSysteme est le jeu fermé des rôles d'accès au portail
type RoleSysteme string

const (
	RoleAdmin          RoleSysteme = "ADMIN"
	RoleManager        RoleSysteme = "MANAGER"
	RoleUser           RoleSysteme = "USER"
	RoleReceptionniste RoleSysteme = "RECEPTIONIST"
	RoleAgent          RoleSysteme = "AGENT"
)

// TousRolesSysteme liste tous les rôles valides, dans un ordre stable
var TousRolesSysteme = []RoleSysteme{
	RoleAdmin,
	RoleManager,
	RoleUser,
	RoleReceptionniste,
	RoleAgent,
}

// EstValide indique si le rôle appartient au jeu fermé
func (r RoleSysteme) EstValide() bool {
	for _, valide := range TousRolesSysteme {
		if r == valide {
			return true
		}
	}
	return false
}

// StatutCompte est l'état d'activation d'un compte
type StatutCompte string

const (
	CompteActif   StatutCompte = "actif"
	CompteInactif StatutCompte = "inactif"
)

// UtilisateurOrganisme est le compte d'une personne synthétisée, lié à
// exactement un couple (organisme, poste) avec un rôle système dérivé.
// L'email est unique sur l'ensemble du système (base + extensions).
// Les comptes ne sont jamais modifiés en place : une régénération remplace
// l'ensemble.
type UtilisateurOrganisme struct {
	ID                string       `json:"id"`
	Nom               string       `json:"nom" validate:"required,no_xss"`
	Prenom            string       `json:"prenom" validate:"required,no_xss"`
	Email             string       `json:"email" validate:"required,email"`
	Telephone         string       `json:"telephone,omitempty"`
	OrganismeCode     string       `json:"organismeCode" validate:"required"`
	PosteID           string       `json:"posteId,omitempty"`
	PosteTitre        string       `json:"posteTitre,omitempty"`
	Role              RoleSysteme  `json:"role" validate:"required,role_systeme"`
	Statut            StatutCompte `json:"statut"`
	MotDePasseHash    string       `json:"-"` // Hash bcrypt, jamais sérialisé
	EstSupplementaire bool         `json:"estSupplementaire"` // true si généré via le registre d'extensions
	CreatedAt         int64        `json:"createdAt"`
}

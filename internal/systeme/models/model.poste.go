package models

// StatutPoste est l'état d'occupation d'un poste
type StatutPoste string

const (
	PosteVacant StatutPoste = "VACANT"
	PosteOccupe StatutPoste = "OCCUPE"
)

// PosteAdministratif représente un poste concret au sein d'un organisme.
// Niveau : entier hiérarchique, 1 = le plus senior.
// Le passage VACANT → OCCUPE ne se fait que par NouvelleAffectation, qui met
// à jour les deux côtés de la relation en même temps.
type PosteAdministratif struct {
	ID              string          `json:"id"`
	Code            string          `json:"code" validate:"required"`
	Titre           string          `json:"titre" validate:"required,no_xss"`
	Niveau          int             `json:"niveau" validate:"gte=1,lte=10"`
	Grades          []string        `json:"grades,omitempty"` // Grades requis (catégories de la fonction publique)
	SalaireBase     int             `json:"salaireBase,omitempty"`
	TypesEligibles  []TypeOrganisme `json:"typesEligibles,omitempty"` // Types d'organisme où ce poste existe
	OrganismeCode   string          `json:"organismeCode"`
	Statut          StatutPoste     `json:"statut"`
	EstPersonnalise bool            `json:"estPersonnalise"`
	CreatedAt       int64           `json:"createdAt"`
}

// EstVacant indique si le poste est à pourvoir
func (p *PosteAdministratif) EstVacant() bool {
	return p.Statut == PosteVacant
}

// Package models - types du système de données ADMIN.GA (organismes, postes,
// fonctionnaires, comptes utilisateurs).
package models

// TypeOrganisme est le jeu fermé des types d'organisme public
type TypeOrganisme string

const (
	TypeMinistere             TypeOrganisme = "MINISTERE"
	TypeDirectionGenerale     TypeOrganisme = "DIRECTION_GENERALE"
	TypeEtablissementPublic   TypeOrganisme = "ETABLISSEMENT_PUBLIC"
	TypeEntreprisePublique    TypeOrganisme = "ENTREPRISE_PUBLIQUE"
	TypeInstitutionSupreme    TypeOrganisme = "INSTITUTION_SUPREME"
	TypeMairie                TypeOrganisme = "MAIRIE"
	TypePrefecture            TypeOrganisme = "PREFECTURE"
	TypeProvince              TypeOrganisme = "PROVINCE"
	TypeOrganismeSocial       TypeOrganisme = "ORGANISME_SOCIAL"
	TypeInstitutionJudiciaire TypeOrganisme = "INSTITUTION_JUDICIAIRE"
	TypeServiceSpecialise     TypeOrganisme = "SERVICE_SPECIALISE"
	TypeAutre                 TypeOrganisme = "AUTRE"
)

// TousTypesOrganisme liste tous les types valides, dans un ordre stable
var TousTypesOrganisme = []TypeOrganisme{
	TypeMinistere,
	TypeDirectionGenerale,
	TypeEtablissementPublic,
	TypeEntreprisePublique,
	TypeInstitutionSupreme,
	TypeMairie,
	TypePrefecture,
	TypeProvince,
	TypeOrganismeSocial,
	TypeInstitutionJudiciaire,
	TypeServiceSpecialise,
	TypeAutre,
}

// EstValide indique si le type appartient au jeu fermé
func (t TypeOrganisme) EstValide() bool {
	for _, valide := range TousTypesOrganisme {
		if t == valide {
			return true
		}
	}
	return false
}

// OrganismePublic représente une unité organisationnelle du secteur public
// gabonais. Le code est unique sur l'ensemble catalogue de base + extensions.
// Un organisme n'est jamais modifié après création; seule la
// réinitialisation du registre d'extensions peut en retirer.
type OrganismePublic struct {
	ID              string        `json:"id"`
	Code            string        `json:"code" validate:"required,code_organisme"`
	Nom             string        `json:"nom" validate:"required,no_xss"`
	Type            TypeOrganisme `json:"type" validate:"required,type_organisme"`
	Province        string        `json:"province,omitempty"`
	Ville           string        `json:"ville,omitempty"`
	Adresse         string        `json:"adresse,omitempty"`
	Telephone       string        `json:"telephone,omitempty"`
	Email           string        `json:"email,omitempty"`
	SiteWeb         string        `json:"siteWeb,omitempty"`
	Couleur         string        `json:"couleur,omitempty"` // Couleur de marque (hex)
	EstPersonnalise bool          `json:"estPersonnalise"`   // true si ajouté via le registre d'extensions
	CreatedAt       int64         `json:"createdAt"`
}

package extensions

import "admin_ga/internal/systeme/models"

// ErreurLot localise l'échec d'un élément dans une opération en masse.
type ErreurLot struct {
	Index   int    `json:"index"`
	Element string `json:"element,omitempty"` // code ou organisme de l'élément en échec
	Message string `json:"message"`
}

// ResultatLot porte le bilan d'une opération en masse : les éléments ajoutés
// et les échecs individuels. Les opérations en masse sont au mieux par
// élément : un échec n'annule pas les ajouts précédents.
type ResultatLot[T any] struct {
	Ajoutes []T         `json:"ajoutes"`
	Erreurs []ErreurLot `json:"erreurs,omitempty"`
}

// EstTotal indique si tous les éléments du lot ont été ajoutés.
func (r ResultatLot[T]) EstTotal() bool {
	return len(r.Erreurs) == 0
}

// DemandeUtilisateurs décrit un lot de comptes à générer pour un organisme.
type DemandeUtilisateurs struct {
	OrganismeCode string               `json:"organismeCode" yaml:"organismeCode"`
	Nombre        int                  `json:"nombre" yaml:"nombre"`
	Roles         []models.RoleSysteme `json:"roles,omitempty" yaml:"roles,omitempty"`
}

// AjouterOrganismesEnMasse ajoute chaque organisme indépendamment.
func (r *Registre) AjouterOrganismesEnMasse(inputs []OrganismeInput) ResultatLot[*models.OrganismePublic] {
	var resultat ResultatLot[*models.OrganismePublic]
	for i, input := range inputs {
		organisme, err := r.AjouterOrganismePersonnalise(input)
		if err != nil {
			resultat.Erreurs = append(resultat.Erreurs, ErreurLot{
				Index: i, Element: input.Code, Message: err.Error(),
			})
			continue
		}
		resultat.Ajoutes = append(resultat.Ajoutes, organisme)
	}
	return resultat
}

// AjouterPostesEnMasse ajoute chaque poste indépendamment.
func (r *Registre) AjouterPostesEnMasse(inputs []PosteInput) ResultatLot[*models.PosteAdministratif] {
	var resultat ResultatLot[*models.PosteAdministratif]
	for i, input := range inputs {
		poste, err := r.AjouterPostePersonnalise(input)
		if err != nil {
			resultat.Erreurs = append(resultat.Erreurs, ErreurLot{
				Index: i, Element: input.Code, Message: err.Error(),
			})
			continue
		}
		resultat.Ajoutes = append(resultat.Ajoutes, poste)
	}
	return resultat
}

// GenererUtilisateursEnMasse traite chaque demande indépendamment.
func (r *Registre) GenererUtilisateursEnMasse(demandes []DemandeUtilisateurs) ResultatLot[*models.UtilisateurOrganisme] {
	var resultat ResultatLot[*models.UtilisateurOrganisme]
	for i, demande := range demandes {
		utilisateurs, err := r.GenererUtilisateursSupplementaires(demande.OrganismeCode, demande.Nombre, demande.Roles)
		if err != nil {
			resultat.Erreurs = append(resultat.Erreurs, ErreurLot{
				Index: i, Element: demande.OrganismeCode, Message: err.Error(),
			})
			continue
		}
		resultat.Ajoutes = append(resultat.Ajoutes, utilisateurs...)
	}
	return resultat
}

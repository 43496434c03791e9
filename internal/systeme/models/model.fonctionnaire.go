package models

import "admin_ga/internal/common"

// SituationFonctionnaire est la situation administrative d'un fonctionnaire
type SituationFonctionnaire string

const (
	SituationEnPoste   SituationFonctionnaire = "EN_POSTE"
	SituationEnAttente SituationFonctionnaire = "EN_ATTENTE"
)

// Fonctionnaire représente un agent de la fonction publique, affecté ou non
// à un poste. PosteID est vide tant que l'agent est EN_ATTENTE.
type Fonctionnaire struct {
	ID        string                 `json:"id"`
	Matricule string                 `json:"matricule"`
	Nom       string                 `json:"nom"`
	Prenom    string                 `json:"prenom"`
	Grade     string                 `json:"grade,omitempty"`
	Situation SituationFonctionnaire `json:"situation"`
	PosteID   string                 `json:"posteId,omitempty"`
	CreatedAt int64                  `json:"createdAt"`
}

// Affectation matérialise la relation poste ↔ fonctionnaire. Elle n'existe
// que lorsque les deux côtés sont cohérents : le constructeur refuse un poste
// déjà occupé ou un fonctionnaire déjà en poste, puis pose les deux états
// ensemble (poste OCCUPE, fonctionnaire EN_POSTE). Il n'y a pas d'opération
// de désaffectation : une régénération remplace l'ensemble.
type Affectation struct {
	PosteID         string `json:"posteId"`
	FonctionnaireID string `json:"fonctionnaireId"`
	Date            int64  `json:"date"`
}

// NouvelleAffectation affecte un fonctionnaire à un poste vacant.
// Les deux côtés de la relation sont mis à jour atomiquement.
func NouvelleAffectation(poste *PosteAdministratif, fonctionnaire *Fonctionnaire, date int64) (*Affectation, error) {
	if poste == nil || fonctionnaire == nil {
		return nil, common.ErrRequiredField
	}
	if poste.Statut == PosteOccupe {
		return nil, common.NewError(common.ErrCodeBusinessState,
			"Le poste "+poste.Code+" est déjà occupé", common.StatusConflict, nil)
	}
	if fonctionnaire.Situation == SituationEnPoste {
		return nil, common.NewError(common.ErrCodeBusinessState,
			"Le fonctionnaire "+fonctionnaire.Matricule+" est déjà en poste", common.StatusConflict, nil)
	}

	poste.Statut = PosteOccupe
	fonctionnaire.Situation = SituationEnPoste
	fonctionnaire.PosteID = poste.ID

	return &Affectation{
		PosteID:         poste.ID,
		FonctionnaireID: fonctionnaire.ID,
		Date:            date,
	}, nil
}

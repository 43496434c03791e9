package extensions

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"admin_ga/internal/common"
	"admin_ga/internal/systeme/models"
)

// Fixtures est le format YAML d'import en masse : organismes, postes et
// demandes de comptes, appliqués dans cet ordre pour que les postes et
// comptes puissent référencer les organismes du même fichier.
type Fixtures struct {
	Organismes   []OrganismeInput      `yaml:"organismes"`
	Postes       []PosteInput          `yaml:"postes"`
	Utilisateurs []DemandeUtilisateurs `yaml:"utilisateurs"`
}

// RapportImport est le bilan d'un import de fixtures, section par section.
type RapportImport struct {
	Organismes   ResultatLot[*models.OrganismePublic]      `json:"organismes"`
	Postes       ResultatLot[*models.PosteAdministratif]   `json:"postes"`
	Utilisateurs ResultatLot[*models.UtilisateurOrganisme] `json:"utilisateurs"`
}

// NombreErreurs totalise les échecs des trois sections.
func (r RapportImport) NombreErreurs() int {
	return len(r.Organismes.Erreurs) + len(r.Postes.Erreurs) + len(r.Utilisateurs.Erreurs)
}

// ChargerFixtures lit et décode un fichier de fixtures YAML.
func ChargerFixtures(chemin string) (*Fixtures, error) {
	contenu, err := os.ReadFile(chemin)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Fichier de fixtures illisible : %s", chemin), common.StatusBadRequest, err.Error())
	}

	var fixtures Fixtures
	if err := yaml.Unmarshal(contenu, &fixtures); err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat,
			"Fixtures YAML invalides", common.StatusBadRequest, err.Error())
	}
	return &fixtures, nil
}

// ImporterFixtures applique les trois sections dans l'ordre, au mieux par
// élément.
func (r *Registre) ImporterFixtures(fixtures *Fixtures) RapportImport {
	return RapportImport{
		Organismes:   r.AjouterOrganismesEnMasse(fixtures.Organismes),
		Postes:       r.AjouterPostesEnMasse(fixtures.Postes),
		Utilisateurs: r.GenererUtilisateursEnMasse(fixtures.Utilisateurs),
	}
}

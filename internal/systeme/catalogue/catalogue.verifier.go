package catalogue

import (
	"fmt"

	"admin_ga/internal/common"
	"admin_ga/internal/systeme/models"
)

// Verifier contrôle la cohérence interne des tables statiques : unicité des
// codes, types d'organisme connus, grades référencés existants. Appelé au
// démarrage; une table incohérente est une erreur de programmation, le
// serveur refuse de démarrer.
func Verifier() error {
	codesOrganisme := make(map[string]bool, len(Organismes))
	for _, org := range Organismes {
		if org.Code == "" || org.Nom == "" {
			return erreurCatalogue(fmt.Sprintf("organismes: entrée incomplète (code=%q)", org.Code))
		}
		if !org.Type.EstValide() {
			return erreurCatalogue(fmt.Sprintf("organismes: type inconnu %q pour %s", org.Type, org.Code))
		}
		if codesOrganisme[org.Code] {
			return erreurCatalogue(fmt.Sprintf("organismes: code dupliqué %s", org.Code))
		}
		codesOrganisme[org.Code] = true
	}

	codesPoste := make(map[string]bool, len(Postes))
	for _, poste := range Postes {
		if poste.Code == "" || poste.Titre == "" {
			return erreurCatalogue(fmt.Sprintf("postes: entrée incomplète (code=%q)", poste.Code))
		}
		if poste.Niveau < 1 || poste.Niveau > 10 {
			return erreurCatalogue(fmt.Sprintf("postes: niveau hors plage pour %s", poste.Code))
		}
		if codesPoste[poste.Code] {
			return erreurCatalogue(fmt.Sprintf("postes: code dupliqué %s", poste.Code))
		}
		codesPoste[poste.Code] = true

		for _, t := range poste.TypesEligibles {
			if !t.EstValide() {
				return erreurCatalogue(fmt.Sprintf("postes: type éligible inconnu %q pour %s", t, poste.Code))
			}
		}
		if len(poste.Grades) == 0 {
			return erreurCatalogue(fmt.Sprintf("postes: aucun grade pour %s", poste.Code))
		}
		for _, g := range poste.Grades {
			if _, ok := GradeParCode(g); !ok {
				return erreurCatalogue(fmt.Sprintf("postes: grade inconnu %q pour %s", g, poste.Code))
			}
		}
	}
	return nil
}

// PostesPourType renvoie les modèles de poste éligibles pour un type
// d'organisme, dans l'ordre du catalogue.
func PostesPourType(t models.TypeOrganisme) []ModelePoste {
	eligibles := make([]ModelePoste, 0, len(Postes))
	for _, p := range Postes {
		if p.EstEligible(t) {
			eligibles = append(eligibles, p)
		}
	}
	return eligibles
}

func erreurCatalogue(message string) error {
	return common.NewError(common.ErrCodeGeneration, "Catalogue incohérent : "+message,
		common.StatusInternalServerError, nil)
}

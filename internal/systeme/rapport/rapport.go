// Package rapport calcule le rapport de contrôle qualité d'un système
// généré : compteurs, validations d'invariants, scores, classements et
// anomalies, avec exports JSON/CSV/HTML/texte.
package rapport

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"admin_ga/internal/systeme/models"
	"admin_ga/internal/utility"
)

// TopN est la taille du classement des organismes par nombre de comptes.
const TopN = 10

// TypeAnomalie classe les anomalies détectées.
type TypeAnomalie string

const (
	AnomalieEmailDuplique      TypeAnomalie = "EMAIL_DUPLIQUE"
	AnomalieCodeDuplique       TypeAnomalie = "CODE_DUPLIQUE"
	AnomalieSansAdmin          TypeAnomalie = "SANS_ADMIN"
	AnomalieSansReceptionniste TypeAnomalie = "SANS_RECEPTIONNISTE"
)

// Anomalie localise un écart aux invariants du système.
type Anomalie struct {
	Type    TypeAnomalie `json:"type"`
	Element string       `json:"element"` // code d'organisme ou email en cause
	Message string       `json:"message"`
}

// ResumeRapport reprend les compteurs globaux du système contrôlé.
type ResumeRapport struct {
	TotalOrganismes     int                          `json:"totalOrganismes"`
	TotalPostes         int                          `json:"totalPostes"`
	TotalUtilisateurs   int                          `json:"totalUtilisateurs"`
	TotalFonctionnaires int                          `json:"totalFonctionnaires"`
	PostesVacants       int                          `json:"postesVacants"`
	PostesOccupes       int                          `json:"postesOccupes"`
	RepartitionTypes    map[models.TypeOrganisme]int `json:"repartitionTypes"`
	RepartitionRoles    map[models.RoleSysteme]int   `json:"repartitionRoles"`
}

// ValidationRapport porte les booléens d'invariants, chacun calculé en
// comparant la cardinalité d'un ensemble à la longueur de la liste source.
type ValidationRapport struct {
	TousOntAdmin          bool `json:"tousOntAdmin"`
	TousOntReceptionniste bool `json:"tousOntReceptionniste"`
	EmailsUniques         bool `json:"emailsUniques"`
	CodesUniques          bool `json:"codesUniques"`
}

// ScoresRapport porte les sous-scores 0–100 et le score global.
// ScoreGlobal est la moyenne arithmétique non pondérée des trois
// sous-scores, arrondie à l'entier le plus proche.
type ScoresRapport struct {
	Completude  int `json:"completude"`  // organismes avec coordonnées, postes et comptes
	Validation  int `json:"validation"`  // part des invariants respectés
	Couverture  int `json:"couverture"`  // organismes couverts ADMIN + RECEPTIONIST
	ScoreGlobal int `json:"scoreGlobal"`
}

// LigneOrganisme est la vue par organisme du rapport, base des exports
// tabulaires et du classement.
type LigneOrganisme struct {
	Code              string               `json:"code"`
	Nom               string               `json:"nom"`
	Type              models.TypeOrganisme `json:"type"`
	TotalUtilisateurs int                  `json:"totalUtilisateurs"`
	TotalPostes       int                  `json:"totalPostes"`
	PostesVacants     int                  `json:"postesVacants"`
	AAdmin            bool                 `json:"aAdmin"`
	AReceptionniste   bool                 `json:"aReceptionniste"`
}

// RapportControle est le rapport de contrôle complet d'un système.
type RapportControle struct {
	GenereLe      int64             `json:"genereLe"`
	Resume        ResumeRapport     `json:"resume"`
	Validation    ValidationRapport `json:"validation"`
	Scores        ScoresRapport     `json:"scores"`
	Organismes    []LigneOrganisme  `json:"organismes"`
	TopOrganismes []LigneOrganisme  `json:"topOrganismes"`
	Anomalies     []Anomalie        `json:"anomalies"`
}

// GenererRapportControle calcule le rapport de contrôle d'un système.
// Calcul pur : le système n'est pas modifié.
func GenererRapportControle(systeme *models.SystemeComplet) *RapportControle {
	rapport := &RapportControle{
		GenereLe: utility.CurrentTimeInMilli(),
		Resume: ResumeRapport{
			TotalOrganismes:     len(systeme.Organismes),
			TotalPostes:         len(systeme.Postes),
			TotalUtilisateurs:   len(systeme.Utilisateurs),
			TotalFonctionnaires: len(systeme.Fonctionnaires),
			RepartitionTypes:    make(map[models.TypeOrganisme]int),
			RepartitionRoles:    make(map[models.RoleSysteme]int),
		},
	}

	for _, poste := range systeme.Postes {
		if poste.EstVacant() {
			rapport.Resume.PostesVacants++
		} else {
			rapport.Resume.PostesOccupes++
		}
	}
	for _, u := range systeme.Utilisateurs {
		rapport.Resume.RepartitionRoles[u.Role]++
	}

	// vues par organisme
	lignes := make(map[string]*LigneOrganisme, len(systeme.Organismes))
	for _, org := range systeme.Organismes {
		rapport.Resume.RepartitionTypes[org.Type]++
		lignes[org.Code] = &LigneOrganisme{Code: org.Code, Nom: org.Nom, Type: org.Type}
	}
	for _, poste := range systeme.Postes {
		if ligne, ok := lignes[poste.OrganismeCode]; ok {
			ligne.TotalPostes++
			if poste.EstVacant() {
				ligne.PostesVacants++
			}
		}
	}
	for _, u := range systeme.Utilisateurs {
		ligne, ok := lignes[u.OrganismeCode]
		if !ok {
			continue
		}
		ligne.TotalUtilisateurs++
		switch u.Role {
		case models.RoleAdmin:
			ligne.AAdmin = true
		case models.RoleReceptionniste:
			ligne.AReceptionniste = true
		}
	}
	for _, org := range systeme.Organismes {
		rapport.Organismes = append(rapport.Organismes, *lignes[org.Code])
	}

	rapport.Validation = validerInvariants(systeme, rapport.Organismes)
	rapport.Anomalies = detecterAnomalies(systeme, rapport.Organismes)
	rapport.Scores = calculerScores(rapport.Organismes, rapport.Validation)
	rapport.TopOrganismes = classerOrganismes(rapport.Organismes, TopN)

	return rapport
}

// validerInvariants calcule chaque booléen en construisant l'ensemble et en
// comparant sa cardinalité à la longueur de la liste source.
func validerInvariants(systeme *models.SystemeComplet, lignes []LigneOrganisme) ValidationRapport {
	emails := make(map[string]bool, len(systeme.Utilisateurs))
	for _, u := range systeme.Utilisateurs {
		emails[strings.ToLower(u.Email)] = true
	}
	codes := make(map[string]bool, len(systeme.Organismes))
	for _, org := range systeme.Organismes {
		codes[org.Code] = true
	}

	validation := ValidationRapport{
		TousOntAdmin:          true,
		TousOntReceptionniste: true,
		EmailsUniques:         len(emails) == len(systeme.Utilisateurs),
		CodesUniques:          len(codes) == len(systeme.Organismes),
	}
	for _, ligne := range lignes {
		if !ligne.AAdmin {
			validation.TousOntAdmin = false
		}
		if !ligne.AReceptionniste {
			validation.TousOntReceptionniste = false
		}
	}
	return validation
}

func detecterAnomalies(systeme *models.SystemeComplet, lignes []LigneOrganisme) []Anomalie {
	var anomalies []Anomalie

	vus := make(map[string]bool, len(systeme.Utilisateurs))
	for _, u := range systeme.Utilisateurs {
		email := strings.ToLower(u.Email)
		if vus[email] {
			anomalies = append(anomalies, Anomalie{
				Type:    AnomalieEmailDuplique,
				Element: email,
				Message: fmt.Sprintf("L'email %s est attribué plusieurs fois", email),
			})
		}
		vus[email] = true
	}

	codesVus := make(map[string]bool, len(systeme.Organismes))
	for _, org := range systeme.Organismes {
		if codesVus[org.Code] {
			anomalies = append(anomalies, Anomalie{
				Type:    AnomalieCodeDuplique,
				Element: org.Code,
				Message: fmt.Sprintf("Le code %s est attribué plusieurs fois", org.Code),
			})
		}
		codesVus[org.Code] = true
	}

	for _, ligne := range lignes {
		if !ligne.AAdmin {
			anomalies = append(anomalies, Anomalie{
				Type:    AnomalieSansAdmin,
				Element: ligne.Code,
				Message: fmt.Sprintf("L'organisme %s n'a aucun compte ADMIN", ligne.Code),
			})
		}
		if !ligne.AReceptionniste {
			anomalies = append(anomalies, Anomalie{
				Type:    AnomalieSansReceptionniste,
				Element: ligne.Code,
				Message: fmt.Sprintf("L'organisme %s n'a aucun compte RECEPTIONIST", ligne.Code),
			})
		}
	}
	return anomalies
}

// calculerScores dérive les trois sous-scores puis le score global.
func calculerScores(lignes []LigneOrganisme, validation ValidationRapport) ScoresRapport {
	var scores ScoresRapport

	if len(lignes) > 0 {
		complets, couverts := 0, 0
		for _, ligne := range lignes {
			if ligne.TotalPostes > 0 && ligne.TotalUtilisateurs > 0 {
				complets++
			}
			if ligne.AAdmin && ligne.AReceptionniste {
				couverts++
			}
		}
		scores.Completude = pourcentage(complets, len(lignes))
		scores.Couverture = pourcentage(couverts, len(lignes))
	}

	respectes := 0
	if validation.TousOntAdmin {
		respectes++
	}
	if validation.TousOntReceptionniste {
		respectes++
	}
	if validation.EmailsUniques {
		respectes++
	}
	if validation.CodesUniques {
		respectes++
	}
	scores.Validation = pourcentage(respectes, 4)

	// moyenne non pondérée des trois sous-scores, arrondie
	scores.ScoreGlobal = int(math.Round(
		float64(scores.Completude+scores.Validation+scores.Couverture) / 3.0))

	return scores
}

func pourcentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// classerOrganismes retourne les n organismes les plus peuplés, à égalité
// par code croissant pour un ordre stable.
func classerOrganismes(lignes []LigneOrganisme, n int) []LigneOrganisme {
	classement := make([]LigneOrganisme, len(lignes))
	copy(classement, lignes)
	sort.SliceStable(classement, func(i, j int) bool {
		if classement[i].TotalUtilisateurs != classement[j].TotalUtilisateurs {
			return classement[i].TotalUtilisateurs > classement[j].TotalUtilisateurs
		}
		return classement[i].Code < classement[j].Code
	})
	if len(classement) > n {
		classement = classement[:n]
	}
	return classement
}

// ComparaisonRapports porte les deltas arithmétiques entre deux rapports.
type ComparaisonRapports struct {
	OrganismesAjoutes     int `json:"organismesAjoutes"`
	PostesAjoutes         int `json:"postesAjoutes"`
	UtilisateursAjoutes   int `json:"utilisateursAjoutes"`
	FonctionnairesAjoutes int `json:"fonctionnairesAjoutes"`
	DeltaScoreGlobal      int `json:"deltaScoreGlobal"`
}

// ComparerRapports calcule les deltas entre deux rapports déjà générés.
// Arithmétique pure : les systèmes sous-jacents ne sont pas recalculés.
func ComparerRapports(avant, apres *RapportControle) ComparaisonRapports {
	return ComparaisonRapports{
		OrganismesAjoutes:     apres.Resume.TotalOrganismes - avant.Resume.TotalOrganismes,
		PostesAjoutes:         apres.Resume.TotalPostes - avant.Resume.TotalPostes,
		UtilisateursAjoutes:   apres.Resume.TotalUtilisateurs - avant.Resume.TotalUtilisateurs,
		FonctionnairesAjoutes: apres.Resume.TotalFonctionnaires - avant.Resume.TotalFonctionnaires,
		DeltaScoreGlobal:      apres.Scores.ScoreGlobal - avant.Scores.ScoreGlobal,
	}
}

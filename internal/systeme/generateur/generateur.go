// Package generateur construit le système de base : expansion du catalogue
// en organismes concrets, allocation des postes par type d'organisme,
// synthèse des comptes et des fonctionnaires. Déterministe à graine fixée.
package generateur

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"admin_ga/config"
	"admin_ga/internal/common"
	"admin_ga/internal/logger"
	"admin_ga/internal/systeme/catalogue"
	"admin_ga/internal/systeme/models"
	"admin_ga/internal/utility"
)

// MotDePasseParDefaut est le mot de passe initial posé sur chaque compte
// synthétisé. Les comptes sont fictifs; le hash reste bcrypt comme en
// production.
const MotDePasseParDefaut = "AdminGA#2025"

// tauxOccupation est la probabilité qu'un poste non garanti soit pourvu.
const tauxOccupation = 0.7

// ImplementerSystemeComplet génère le graphe complet du système de base :
// organismes, postes, comptes, fonctionnaires, affectations et statistiques.
// Déterministe pour une graine donnée (cfg.Graine), hormis le sel bcrypt.
// Sans effet de bord : chaque appel retourne un graphe neuf.
func ImplementerSystemeComplet(ctx context.Context, cfg *config.Configuration) (*models.SystemeComplet, error) {
	log := logger.GetAppLogger().WithField("module", "generateur")

	if err := catalogue.Verifier(); err != nil {
		log.WithError(err).Error("Catalogue incohérent, génération refusée")
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(MotDePasseParDefaut), bcrypt.MinCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer,
			"Impossible de dériver le mot de passe par défaut", common.StatusInternalServerError, err)
	}

	rng := rand.New(rand.NewSource(cfg.Graine))
	synthetiseur := NouveauSynthetiseur(rng, string(hash))
	maintenant := utility.CurrentTimeInMilli()

	systeme := &models.SystemeComplet{GenereLe: maintenant}

	for _, modele := range catalogue.Organismes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		organisme := etendreOrganisme(modele, synthetiseur, maintenant)
		systeme.Organismes = append(systeme.Organismes, organisme)

		postes := allouerPostes(organisme, maintenant)
		systeme.Postes = append(systeme.Postes, postes...)

		for _, poste := range postes {
			role, pourvu := deciderOccupation(poste, postes[0], rng)
			if !pourvu {
				continue
			}
			utilisateur, fonctionnaire, affectation, err := synthetiseur.AffecterPoste(organisme, poste, role, maintenant)
			if err != nil {
				return nil, err
			}
			systeme.Utilisateurs = append(systeme.Utilisateurs, utilisateur)
			systeme.Fonctionnaires = append(systeme.Fonctionnaires, fonctionnaire)
			systeme.Affectations = append(systeme.Affectations, affectation)
		}

		// vivier d'agents en attente d'affectation
		for i := rng.Intn(3); i > 0; i-- {
			grade := catalogue.Grades[rng.Intn(len(catalogue.Grades))].Code
			systeme.Fonctionnaires = append(systeme.Fonctionnaires,
				synthetiseur.SynthetiserFonctionnaire(grade, maintenant))
		}
	}

	systeme.CalculerStatistiques()

	log.WithFields(map[string]interface{}{
		"organismes":     systeme.Statistiques.TotalOrganismes,
		"postes":         systeme.Statistiques.TotalPostes,
		"utilisateurs":   systeme.Statistiques.TotalUtilisateurs,
		"fonctionnaires": systeme.Statistiques.TotalFonctionnaires,
		"graine":         cfg.Graine,
	}).Info("Système de base généré")

	return systeme, nil
}

// etendreOrganisme transforme une entrée du catalogue en organisme concret
// avec ses coordonnées institutionnelles.
func etendreOrganisme(modele catalogue.ModeleOrganisme, synthetiseur *Synthetiseur, maintenant int64) *models.OrganismePublic {
	domaine := DomaineOrganisme(modele.Code)
	return &models.OrganismePublic{
		ID:        "org_" + strings.ToLower(modele.Code),
		Code:      modele.Code,
		Nom:       modele.Nom,
		Type:      modele.Type,
		Province:  modele.Province,
		Ville:     modele.Ville,
		Adresse:   fmt.Sprintf("Boulevard Triomphal, %s", modele.Ville),
		Telephone: synthetiseur.TelephoneGabonais(),
		Email:     "contact@" + domaine,
		SiteWeb:   "https://" + domaine,
		Couleur:   modele.Couleur,
		CreatedAt: maintenant,
	}
}

// allouerPostes instancie tous les modèles de poste éligibles pour le type
// de l'organisme. Tous les postes naissent VACANT; l'occupation passe par
// l'affectation.
func allouerPostes(organisme *models.OrganismePublic, maintenant int64) []*models.PosteAdministratif {
	modeles := catalogue.PostesPourType(organisme.Type)
	postes := make([]*models.PosteAdministratif, 0, len(modeles))
	for _, m := range modeles {
		postes = append(postes, &models.PosteAdministratif{
			ID:             fmt.Sprintf("poste_%s_%s", strings.ToLower(organisme.Code), strings.ToLower(m.Code)),
			Code:           m.Code,
			Titre:          m.Titre,
			Niveau:         m.Niveau,
			Grades:         m.Grades,
			SalaireBase:    m.SalaireBase,
			TypesEligibles: m.TypesEligibles,
			OrganismeCode:  organisme.Code,
			Statut:         models.PosteVacant,
			CreatedAt:      maintenant,
		})
	}
	return postes
}

// deciderOccupation décide si un poste est pourvu et avec quel rôle système.
// Deux garanties : le poste le plus senior de l'organisme est toujours pourvu
// (rôle ADMIN), le poste de réceptionniste aussi (rôle RECEPTIONIST). Les
// autres le sont au taux d'occupation près.
func deciderOccupation(poste, plusSenior *models.PosteAdministratif, rng *rand.Rand) (models.RoleSysteme, bool) {
	switch {
	case poste == plusSenior:
		return models.RoleAdmin, true
	case poste.Code == "RECEPTIONNISTE":
		return models.RoleReceptionniste, true
	case rng.Float64() >= tauxOccupation:
		return "", false
	case poste.Niveau <= 2:
		return models.RoleManager, true
	case poste.Niveau <= 5:
		return models.RoleUser, true
	default:
		return models.RoleAgent, true
	}
}

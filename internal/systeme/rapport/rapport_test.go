package rapport

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin_ga/config"
	"admin_ga/internal/systeme/generateur"
	"admin_ga/internal/systeme/models"
)

func systemeSain(t *testing.T) *models.SystemeComplet {
	t.Helper()
	systeme, err := generateur.ImplementerSystemeComplet(context.Background(), &config.Configuration{Graine: 42})
	require.NoError(t, err)
	return systeme
}

// systemeDegrade construit un petit système violant les invariants :
// emails dupliqués, organisme sans admin ni réceptionniste.
func systemeDegrade() *models.SystemeComplet {
	systeme := &models.SystemeComplet{
		Organismes: []*models.OrganismePublic{
			{ID: "org_a", Code: "ORG_A", Nom: "Organisme A", Type: models.TypeMinistere},
			{ID: "org_b", Code: "ORG_B", Nom: "Organisme B", Type: models.TypeMairie},
		},
		Postes: []*models.PosteAdministratif{
			{ID: "p1", Code: "SG", Titre: "Secrétaire Général", Niveau: 1, OrganismeCode: "ORG_A", Statut: models.PosteOccupe},
		},
		Utilisateurs: []*models.UtilisateurOrganisme{
			{ID: "u1", Nom: "Ondo", Prenom: "Jean", Email: "jean.ondo@org-a.gouv.ga", OrganismeCode: "ORG_A", Role: models.RoleAdmin},
			{ID: "u2", Nom: "Obame", Prenom: "Marie", Email: "jean.ondo@org-a.gouv.ga", OrganismeCode: "ORG_A", Role: models.RoleReceptionniste},
		},
	}
	systeme.CalculerStatistiques()
	return systeme
}

func TestGenererRapportControle_SystemeSain(t *testing.T) {
	systeme := systemeSain(t)
	rapport := GenererRapportControle(systeme)

	assert.Equal(t, len(systeme.Organismes), rapport.Resume.TotalOrganismes)
	assert.Equal(t, len(systeme.Utilisateurs), rapport.Resume.TotalUtilisateurs)

	assert.True(t, rapport.Validation.TousOntAdmin)
	assert.True(t, rapport.Validation.TousOntReceptionniste)
	assert.True(t, rapport.Validation.EmailsUniques)
	assert.True(t, rapport.Validation.CodesUniques)
	assert.Empty(t, rapport.Anomalies)

	assert.Equal(t, 100, rapport.Scores.Validation)
	assert.Equal(t, 100, rapport.Scores.Couverture)
	assert.Equal(t, 100, rapport.Scores.Completude)
	assert.Equal(t, 100, rapport.Scores.ScoreGlobal)
}

func TestGenererRapportControle_SystemeDegrade(t *testing.T) {
	rapport := GenererRapportControle(systemeDegrade())

	assert.False(t, rapport.Validation.TousOntAdmin, "ORG_B n'a pas d'admin")
	assert.False(t, rapport.Validation.TousOntReceptionniste)
	assert.False(t, rapport.Validation.EmailsUniques)
	assert.True(t, rapport.Validation.CodesUniques)

	types := make(map[TypeAnomalie]int)
	for _, anomalie := range rapport.Anomalies {
		types[anomalie.Type]++
	}
	assert.Equal(t, 1, types[AnomalieEmailDuplique])
	assert.Equal(t, 1, types[AnomalieSansAdmin])
	assert.Equal(t, 1, types[AnomalieSansReceptionniste])
	assert.Zero(t, types[AnomalieCodeDuplique])
}

func TestCalculerScores_MoyenneNonPonderee(t *testing.T) {
	rapport := GenererRapportControle(systemeDegrade())

	// complétude : 1 organisme sur 2 a postes et comptes → 50
	assert.Equal(t, 50, rapport.Scores.Completude)
	// validation : 1 invariant sur 4 respecté → 25
	assert.Equal(t, 25, rapport.Scores.Validation)
	// couverture : 1 organisme sur 2 couvert → 50
	assert.Equal(t, 50, rapport.Scores.Couverture)
	// moyenne non pondérée arrondie : (50+25+50)/3 = 41.67 → 42
	assert.Equal(t, 42, rapport.Scores.ScoreGlobal)
}

func TestClasserOrganismes(t *testing.T) {
	rapport := GenererRapportControle(systemeSain(t))

	require.Len(t, rapport.TopOrganismes, TopN)
	for i := 1; i < len(rapport.TopOrganismes); i++ {
		assert.GreaterOrEqual(t,
			rapport.TopOrganismes[i-1].TotalUtilisateurs,
			rapport.TopOrganismes[i].TotalUtilisateurs,
			"classement non décroissant")
	}
}

func TestComparerRapports(t *testing.T) {
	systeme := systemeDegrade()
	avant := GenererRapportControle(systeme)

	systeme.Organismes = append(systeme.Organismes,
		&models.OrganismePublic{ID: "org_c", Code: "ORG_C", Nom: "Organisme C", Type: models.TypeAutre},
		&models.OrganismePublic{ID: "org_d", Code: "ORG_D", Nom: "Organisme D", Type: models.TypeAutre},
	)
	systeme.Utilisateurs = append(systeme.Utilisateurs,
		&models.UtilisateurOrganisme{ID: "u3", Nom: "Mba", Prenom: "Paul", Email: "paul.mba@org-c.gouv.ga", OrganismeCode: "ORG_C", Role: models.RoleUser},
		&models.UtilisateurOrganisme{ID: "u4", Nom: "Ndong", Prenom: "Claire", Email: "claire.ndong@org-c.gouv.ga", OrganismeCode: "ORG_C", Role: models.RoleUser},
		&models.UtilisateurOrganisme{ID: "u5", Nom: "Koumba", Prenom: "Serge", Email: "serge.koumba@org-d.gouv.ga", OrganismeCode: "ORG_D", Role: models.RoleUser},
	)
	apres := GenererRapportControle(systeme)

	deltas := ComparerRapports(avant, apres)
	assert.Equal(t, 2, deltas.OrganismesAjoutes)
	assert.Equal(t, 3, deltas.UtilisateursAjoutes)
	assert.Equal(t, 0, deltas.PostesAjoutes)
}

func TestExporterJSON(t *testing.T) {
	rapport := GenererRapportControle(systemeDegrade())

	contenu, err := ExporterJSON(rapport)
	require.NoError(t, err)

	var relu RapportControle
	require.NoError(t, json.Unmarshal([]byte(contenu), &relu))
	assert.Equal(t, rapport.Resume, relu.Resume)
	assert.Equal(t, rapport.Scores, relu.Scores)
}

func TestExporterCSV(t *testing.T) {
	rapport := GenererRapportControle(systemeDegrade())

	contenu, err := ExporterCSV(rapport)
	require.NoError(t, err)

	lignes := strings.Split(strings.TrimRight(contenu, "\n"), "\n")
	require.Len(t, lignes, 3, "en-tête + une ligne par organisme")
	assert.True(t, strings.HasPrefix(lignes[0], "code,nom,type"))
	assert.Contains(t, lignes[1], "ORG_A")
	assert.Contains(t, lignes[2], "ORG_B")
}

func TestExporterHTML(t *testing.T) {
	rapport := GenererRapportControle(systemeDegrade())

	contenu, err := ExporterHTML(rapport)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(contenu, "<!DOCTYPE html>"))
	assert.Contains(t, contenu, "Score global")
	assert.Contains(t, contenu, "ORG_A")
	assert.Contains(t, contenu, "SANS_ADMIN")
}

func TestExporterTexte(t *testing.T) {
	rapport := GenererRapportControle(systemeDegrade())

	contenu, err := ExporterTexte(rapport)
	require.NoError(t, err)

	assert.Contains(t, contenu, "RAPPORT DE CONTRÔLE")
	assert.Contains(t, contenu, "SCORE GLOBAL")
	assert.Contains(t, contenu, "Anomalies (3)")
}

func TestExporter_FormatInconnu(t *testing.T) {
	rapport := GenererRapportControle(systemeDegrade())

	_, err := Exporter(rapport, "pdf")
	assert.Error(t, err)

	for _, format := range FormatsDisponibles() {
		contenu, err := Exporter(rapport, format)
		require.NoError(t, err, "format %s", format)
		assert.NotEmpty(t, contenu)
	}
}

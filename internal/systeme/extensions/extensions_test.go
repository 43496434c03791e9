package extensions

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin_ga/config"
	"admin_ga/internal/common"
	"admin_ga/internal/global"
	"admin_ga/internal/systeme/generateur"
	"admin_ga/internal/systeme/models"
)

var systemeDeBase *models.SystemeComplet

func TestMain(m *testing.M) {
	global.InitValidator()

	var err error
	systemeDeBase, err = generateur.ImplementerSystemeComplet(context.Background(), &config.Configuration{Graine: 42})
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func registreDeTest() *Registre {
	return NouveauRegistre(systemeDeBase)
}

func TestAjouterOrganismePersonnalise_Conservation(t *testing.T) {
	registre := registreDeTest()

	avant, err := registre.ObtenirSystemeEtendu()
	require.NoError(t, err)

	organisme, err := registre.AjouterOrganismePersonnalise(OrganismeInput{
		Nom: "Agence Test", Code: "AGENCE_TEST", Type: models.TypeServiceSpecialise,
	})
	require.NoError(t, err)
	assert.True(t, organisme.EstPersonnalise)
	assert.Equal(t, "contact@agence-test.gouv.ga", organisme.Email)

	apres, err := registre.ObtenirSystemeEtendu()
	require.NoError(t, err)
	assert.Equal(t, len(avant.Organismes)+1, len(apres.Organismes))
	assert.Equal(t, avant.Statistiques.TotalOrganismes+1, apres.Statistiques.TotalOrganismes)
}

func TestAjouterOrganismePersonnalise_CodeDuplique(t *testing.T) {
	registre := registreDeTest()

	avant, err := registre.ObtenirSystemeEtendu()
	require.NoError(t, err)

	// collision avec un code du système de base
	_, err = registre.AjouterOrganismePersonnalise(OrganismeInput{
		Nom: "Doublon", Code: systemeDeBase.Organismes[0].Code, Type: models.TypeAutre,
	})
	require.Error(t, err)

	// collision avec un code d'extension
	_, err = registre.AjouterOrganismePersonnalise(OrganismeInput{
		Nom: "Original", Code: "UNIQUE_X", Type: models.TypeAutre,
	})
	require.NoError(t, err)
	_, err = registre.AjouterOrganismePersonnalise(OrganismeInput{
		Nom: "Doublon", Code: "UNIQUE_X", Type: models.TypeAutre,
	})
	require.Error(t, err)

	apres, err := registre.ObtenirSystemeEtendu()
	require.NoError(t, err)
	assert.Equal(t, len(avant.Organismes)+1, len(apres.Organismes), "un rejet ne doit rien laisser dans le registre")
}

func TestAjouterOrganismePersonnalise_Validation(t *testing.T) {
	registre := registreDeTest()

	cas := []OrganismeInput{
		{Nom: "", Code: "SANS_NOM", Type: models.TypeAutre},
		{Nom: "Code invalide", Code: "minuscules", Type: models.TypeAutre},
		{Nom: "Type invalide", Code: "TYPE_X", Type: "PAS_UN_TYPE"},
		{Nom: "<script>alert(1)</script>", Code: "XSS_X", Type: models.TypeAutre},
	}
	for _, input := range cas {
		_, err := registre.AjouterOrganismePersonnalise(input)
		assert.Error(t, err, "entrée acceptée à tort: %+v", input)
	}
}

func TestAjouterPostePersonnalise(t *testing.T) {
	registre := registreDeTest()
	organismeCode := systemeDeBase.Organismes[0].Code

	poste, err := registre.AjouterPostePersonnalise(PosteInput{
		Code: "CHARGE_MISSION", Titre: "Chargé de Mission", Niveau: 3,
		Grades: []string{"A2"}, SalaireBase: 700000, OrganismeCode: organismeCode,
	})
	require.NoError(t, err)
	assert.True(t, poste.EstPersonnalise)
	assert.Equal(t, models.PosteVacant, poste.Statut)

	// même couple (organisme, code) refusé
	_, err = registre.AjouterPostePersonnalise(PosteInput{
		Code: "CHARGE_MISSION", Titre: "Doublon", Niveau: 3, OrganismeCode: organismeCode,
	})
	assert.Error(t, err)

	// organisme inconnu refusé
	_, err = registre.AjouterPostePersonnalise(PosteInput{
		Code: "CHARGE_MISSION", Titre: "Orphelin", Niveau: 3, OrganismeCode: "INEXISTANT",
	})
	assert.ErrorIs(t, err, common.ErrOrganismeIntrouvable)
}

func TestGenererUtilisateursSupplementaires_Scenario(t *testing.T) {
	registre := registreDeTest()
	registre.Reinitialiser()

	_, err := registre.AjouterOrganismePersonnalise(OrganismeInput{
		Nom: "Test Org", Code: "TEST_1", Type: models.TypeEtablissementPublic,
	})
	require.NoError(t, err)

	utilisateurs, err := registre.GenererUtilisateursSupplementaires("TEST_1", 3, []models.RoleSysteme{models.RoleUser})
	require.NoError(t, err)
	require.Len(t, utilisateurs, 3)

	emails := make(map[string]bool)
	for _, u := range utilisateurs {
		assert.Equal(t, "TEST_1", u.OrganismeCode)
		assert.Equal(t, models.RoleUser, u.Role)
		assert.True(t, u.EstSupplementaire)
		assert.False(t, emails[u.Email], "email dupliqué: %s", u.Email)
		emails[u.Email] = true
	}
}

func TestGenererUtilisateursSupplementaires_OrganismeInconnu(t *testing.T) {
	registre := registreDeTest()

	_, err := registre.GenererUtilisateursSupplementaires("INEXISTANT", 2, nil)
	assert.ErrorIs(t, err, common.ErrOrganismeIntrouvable)
}

func TestGenererUtilisateursSupplementaires_RepartitionRoles(t *testing.T) {
	registre := registreDeTest()
	organismeCode := systemeDeBase.Organismes[0].Code

	roles := []models.RoleSysteme{models.RoleAdmin, models.RoleUser}
	utilisateurs, err := registre.GenererUtilisateursSupplementaires(organismeCode, 5, roles)
	require.NoError(t, err)
	require.Len(t, utilisateurs, 5)

	// répartition dans l'ordre demandé: ADMIN, USER, ADMIN, USER, ADMIN
	assert.Equal(t, models.RoleAdmin, utilisateurs[0].Role)
	assert.Equal(t, models.RoleUser, utilisateurs[1].Role)
	assert.Equal(t, models.RoleAdmin, utilisateurs[4].Role)
}

func TestGenererUtilisateursSupplementaires_EmailsUniquesFaceALaBase(t *testing.T) {
	registre := registreDeTest()
	organismeCode := systemeDeBase.Organismes[0].Code

	utilisateurs, err := registre.GenererUtilisateursSupplementaires(organismeCode, 50, nil)
	require.NoError(t, err)

	connus := make(map[string]bool)
	for _, u := range systemeDeBase.Utilisateurs {
		connus[u.Email] = true
	}
	for _, u := range utilisateurs {
		assert.False(t, connus[u.Email], "email en collision avec la base: %s", u.Email)
		connus[u.Email] = true
	}
}

func TestReinitialiser_Idempotence(t *testing.T) {
	registre := registreDeTest()

	_, err := registre.AjouterOrganismePersonnalise(OrganismeInput{
		Nom: "Éphémère", Code: "EPHEMERE", Type: models.TypeAutre,
	})
	require.NoError(t, err)

	registre.Reinitialiser()
	premier, err := registre.ObtenirSystemeEtendu()
	require.NoError(t, err)

	registre.Reinitialiser()
	second, err := registre.ObtenirSystemeEtendu()
	require.NoError(t, err)

	assert.Equal(t, len(systemeDeBase.Organismes), len(premier.Organismes))
	assert.Equal(t, len(premier.Organismes), len(second.Organismes))
	assert.Equal(t, premier.Statistiques, second.Statistiques)

	// le code libéré est de nouveau disponible
	_, err = registre.AjouterOrganismePersonnalise(OrganismeInput{
		Nom: "Renaissance", Code: "EPHEMERE", Type: models.TypeAutre,
	})
	assert.NoError(t, err)
}

func TestAjouterOrganismesEnMasse_AuMieuxParElement(t *testing.T) {
	registre := registreDeTest()

	resultat := registre.AjouterOrganismesEnMasse([]OrganismeInput{
		{Nom: "Premier", Code: "MASSE_1", Type: models.TypeAutre},
		{Nom: "Doublon", Code: "MASSE_1", Type: models.TypeAutre},
		{Nom: "Troisième", Code: "MASSE_3", Type: models.TypeAutre},
	})

	require.Len(t, resultat.Ajoutes, 2, "un échec ne doit pas annuler les autres éléments")
	require.Len(t, resultat.Erreurs, 1)
	assert.Equal(t, 1, resultat.Erreurs[0].Index)
	assert.Equal(t, "MASSE_1", resultat.Erreurs[0].Element)
	assert.False(t, resultat.EstTotal())

	etendu, err := registre.ObtenirSystemeEtendu()
	require.NoError(t, err)
	assert.Equal(t, len(systemeDeBase.Organismes)+2, len(etendu.Organismes))
}

func TestImporterFixtures(t *testing.T) {
	registre := registreDeTest()

	chemin := filepath.Join(t.TempDir(), "fixtures.yaml")
	contenu := `organismes:
  - nom: Agence Importée
    code: AGENCE_IMPORT
    type: SERVICE_SPECIALISE
    ville: Libreville
postes:
  - code: CHARGE_IMPORT
    titre: Chargé d'Import
    niveau: 4
    organismeCode: AGENCE_IMPORT
utilisateurs:
  - organismeCode: AGENCE_IMPORT
    nombre: 2
    roles: [ADMIN, RECEPTIONIST]
  - organismeCode: INEXISTANT
    nombre: 1
`
	require.NoError(t, os.WriteFile(chemin, []byte(contenu), 0644))

	fixtures, err := ChargerFixtures(chemin)
	require.NoError(t, err)

	rapport := registre.ImporterFixtures(fixtures)
	assert.Len(t, rapport.Organismes.Ajoutes, 1)
	assert.Len(t, rapport.Postes.Ajoutes, 1)
	assert.Len(t, rapport.Utilisateurs.Ajoutes, 2)
	assert.Equal(t, 1, rapport.NombreErreurs())
}

func TestChargerFixtures_FichierInvalide(t *testing.T) {
	_, err := ChargerFixtures(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	chemin := filepath.Join(t.TempDir(), "invalide.yaml")
	require.NoError(t, os.WriteFile(chemin, []byte("organismes: [pas: {fermé"), 0644))
	_, err = ChargerFixtures(chemin)
	assert.Error(t, err)
}

package unification

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin_ga/config"
	"admin_ga/internal/global"
	"admin_ga/internal/systeme/extensions"
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

func serviceDeTest() (*Service, *extensions.Registre) {
	registre := extensions.NouveauRegistre(systemeDeBase)
	return NouveauService(registre), registre
}

func TestGetUnifiedSystemData(t *testing.T) {
	service, _ := serviceDeTest()

	donnees, err := service.GetUnifiedSystemData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(systemeDeBase.Organismes), donnees.Statistiques.TotalOrganismes)
	assert.Equal(t, len(systemeDeBase.Utilisateurs), donnees.Statistiques.TotalUtilisateurs)

	// les stats locales se recoupent avec le total global
	total := 0
	for _, org := range donnees.Organismes {
		total += org.Stats.TotalUtilisateurs
	}
	assert.Equal(t, donnees.Statistiques.TotalUtilisateurs, total)

	// moyenne non pondérée
	attendu := float64(donnees.Statistiques.TotalUtilisateurs) / float64(donnees.Statistiques.TotalOrganismes)
	assert.InDelta(t, attendu, donnees.Statistiques.MoyenneUtilisateurs, 1e-9)
}

func TestGetUnifiedSystemDataAvecCache_Memoisation(t *testing.T) {
	service, registre := serviceDeTest()
	ctx := context.Background()

	premier, err := service.GetUnifiedSystemDataAvecCache(ctx)
	require.NoError(t, err)
	second, err := service.GetUnifiedSystemDataAvecCache(ctx)
	require.NoError(t, err)
	assert.Same(t, premier, second, "deux appels sans invalidation doivent servir le même résultat")

	// une mutation sans invalidation reste invisible
	_, err = registre.AjouterOrganismePersonnalise(extensions.OrganismeInput{
		Nom: "Cache Org", Code: "CACHE_ORG", Type: models.TypeAutre,
	})
	require.NoError(t, err)
	troisieme, err := service.GetUnifiedSystemDataAvecCache(ctx)
	require.NoError(t, err)
	assert.Same(t, premier, troisieme)

	// après invalidation, la vue reflète la mutation
	service.InvaliderCache()
	quatrieme, err := service.GetUnifiedSystemDataAvecCache(ctx)
	require.NoError(t, err)
	assert.NotSame(t, premier, quatrieme)
	assert.Equal(t, premier.Statistiques.TotalOrganismes+1, quatrieme.Statistiques.TotalOrganismes)
}

func TestGetOrganismeParCode(t *testing.T) {
	service, registre := serviceDeTest()
	ctx := context.Background()

	org, err := service.GetOrganismeParCode(ctx, systemeDeBase.Organismes[0].Code)
	require.NoError(t, err)
	require.NotNil(t, org)
	assert.Equal(t, systemeDeBase.Organismes[0].Nom, org.Nom)

	absent, err := service.GetOrganismeParCode(ctx, "INEXISTANT")
	require.NoError(t, err)
	assert.Nil(t, absent)

	// un organisme fraîchement ajouté est trouvable sans invalidation
	_, err = registre.AjouterOrganismePersonnalise(extensions.OrganismeInput{
		Nom: "Frais", Code: "FRAIS_ORG", Type: models.TypeAutre,
	})
	require.NoError(t, err)
	frais, err := service.GetOrganismeParCode(ctx, "FRAIS_ORG")
	require.NoError(t, err)
	require.NotNil(t, frais)
	assert.True(t, frais.EstPersonnalise)
}

func TestLookups(t *testing.T) {
	service, _ := serviceDeTest()
	ctx := context.Background()

	code := systemeDeBase.Organismes[0].Code
	utilisateurs, err := service.GetUtilisateursParOrganisme(ctx, code)
	require.NoError(t, err)
	require.NotEmpty(t, utilisateurs)
	for _, u := range utilisateurs {
		assert.Equal(t, code, u.OrganismeCode)
	}

	ministeres, err := service.GetOrganismesParType(ctx, models.TypeMinistere)
	require.NoError(t, err)
	require.NotEmpty(t, ministeres)
	for _, org := range ministeres {
		assert.Equal(t, models.TypeMinistere, org.Type)
	}

	admins, err := service.GetUtilisateursParRole(ctx, models.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, admins)
	for _, u := range admins {
		assert.Equal(t, models.RoleAdmin, u.Role)
	}
}

func TestRechercherOrganismes(t *testing.T) {
	service, _ := serviceDeTest()
	ctx := context.Background()

	resultats, err := service.RechercherOrganismes(ctx, "ministère")
	require.NoError(t, err)
	require.NotEmpty(t, resultats)
	for _, org := range resultats {
		assert.Equal(t, models.TypeMinistere, org.Type)
	}

	// insensible à la casse, et le code est cherché aussi
	parCode, err := service.RechercherOrganismes(ctx, "dgdi")
	require.NoError(t, err)
	require.Len(t, parCode, 1)
	assert.Equal(t, "DGDI", parCode[0].Code)

	aucun, err := service.RechercherOrganismes(ctx, "zzzzzz")
	require.NoError(t, err)
	assert.Empty(t, aucun)
}

func TestRechercherUtilisateurs_OrdreInsertion(t *testing.T) {
	service, _ := serviceDeTest()
	ctx := context.Background()

	resultats, err := service.RechercherUtilisateurs(ctx, "gouv.ga")
	require.NoError(t, err)
	require.NotEmpty(t, resultats)

	// l'ordre de la vue unifiée est préservé, aucun reclassement
	indices := make(map[string]int)
	for i, u := range systemeDeBase.Utilisateurs {
		indices[u.ID] = i
	}
	dernier := -1
	for _, u := range resultats {
		assert.Greater(t, indices[u.ID], dernier)
		dernier = indices[u.ID]
	}
}

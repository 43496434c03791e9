package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin_ga/config"
	"admin_ga/internal/api/middleware"
	rhsvc "admin_ga/internal/api/rh/service"
	apirouter "admin_ga/internal/api/router"
	"admin_ga/internal/common"
	"admin_ga/internal/global"
	"admin_ga/internal/systeme/extensions"
	"admin_ga/internal/systeme/generateur"
	"admin_ga/internal/systeme/models"
	"admin_ga/internal/systeme/unification"
)

func TestMain(m *testing.M) {
	global.InitValidator()
	configurerEnvironnement("development")
	m.Run()
}

func configurerEnvironnement(goEnv string) {
	global.ServerConfig = &config.Configuration{
		JwtSecret: "secret-de-test",
		GoEnv:     goEnv,
		Graine:    42,
	}
}

// nouvelleApp assemble une application complète sur un système généré avec
// la graine de test.
func nouvelleApp(t *testing.T) *fiber.App {
	t.Helper()

	systeme, err := generateur.ImplementerSystemeComplet(context.Background(), global.ServerConfig)
	require.NoError(t, err)

	registre := extensions.NouveauRegistre(systeme)
	service := rhsvc.NewService(registre, unification.NouveauService(registre))

	app := fiber.New()
	require.NoError(t, apirouter.SetupRoutes(app, Register(service)))
	return app
}

func decoderCorps(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	corps, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decode map[string]interface{}
	require.NoError(t, json.Unmarshal(corps, &decode))
	return decode
}

func TestSante(t *testing.T) {
	app := nouvelleApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, common.StatusOK, resp.StatusCode)

	corps := decoderCorps(t, resp)
	assert.Equal(t, "success", corps["status"])
}

func TestStatistiques_BypassDeveloppement(t *testing.T) {
	configurerEnvironnement("development")
	app := nouvelleApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/rh/statistiques", nil))
	require.NoError(t, err)
	assert.Equal(t, common.StatusOK, resp.StatusCode)

	corps := decoderCorps(t, resp)
	assert.Equal(t, true, corps["success"])
	donnees, ok := corps["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Greater(t, donnees["totalOrganismes"], float64(0))
}

func TestStatistiques_SansTokenEnProduction(t *testing.T) {
	configurerEnvironnement("production")
	defer configurerEnvironnement("development")
	app := nouvelleApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/rh/statistiques", nil))
	require.NoError(t, err)
	assert.Equal(t, common.StatusUnauthorized, resp.StatusCode)

	corps := decoderCorps(t, resp)
	assert.Equal(t, false, corps["success"])
	assert.NotEmpty(t, corps["error"])
}

func TestStatistiques_AvecTokenEnProduction(t *testing.T) {
	configurerEnvironnement("production")
	defer configurerEnvironnement("development")
	app := nouvelleApp(t)

	token, err := middleware.NouveauToken("user_0001", "jean.ondo@dgdi.gouv.ga", models.RoleAdmin, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rh/statistiques", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusOK, resp.StatusCode)
}

func TestListerOrganismes_FiltreParType(t *testing.T) {
	configurerEnvironnement("development")
	app := nouvelleApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/organismes/?type=MINISTERE", nil))
	require.NoError(t, err)
	assert.Equal(t, common.StatusOK, resp.StatusCode)

	corps := decoderCorps(t, resp)
	assert.Equal(t, "success", corps["status"])
	donnees, ok := corps["data"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, donnees)
	for _, element := range donnees {
		organisme := element.(map[string]interface{})
		assert.Equal(t, "MINISTERE", organisme["type"])
	}
}

func TestObtenirOrganisme(t *testing.T) {
	configurerEnvironnement("development")
	app := nouvelleApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/organismes/DGDI", nil))
	require.NoError(t, err)
	assert.Equal(t, common.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/organismes/INCONNU", nil))
	require.NoError(t, err)
	assert.Equal(t, common.StatusNotFound, resp.StatusCode)
}

func TestRechercherOrganismes(t *testing.T) {
	configurerEnvironnement("development")
	app := nouvelleApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/recherche/organismes?q=dgdi", nil))
	require.NoError(t, err)
	assert.Equal(t, common.StatusOK, resp.StatusCode)

	corps := decoderCorps(t, resp)
	donnees, ok := corps["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, donnees, 1)
}

func TestAjouterOrganisme_PuisDuplique(t *testing.T) {
	configurerEnvironnement("development")
	app := nouvelleApp(t)

	corpsRequete := `{"nom":"Agence Nationale des Parcs","code":"ANPN","type":"ETABLISSEMENT_PUBLIC","province":"Estuaire","ville":"Libreville"}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extensions/organismes", strings.NewReader(corpsRequete))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusCreated, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/extensions/organismes", strings.NewReader(corpsRequete))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusConflict, resp.StatusCode)
}

func TestGenererUtilisateurs_ValidationNombre(t *testing.T) {
	configurerEnvironnement("development")
	app := nouvelleApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extensions/utilisateurs/generer",
		strings.NewReader(`{"organismeCode":"DGDI","nombre":0}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/extensions/utilisateurs/generer",
		strings.NewReader(`{"organismeCode":"DGDI","nombre":3,"roles":["USER"]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusCreated, resp.StatusCode)

	corps := decoderCorps(t, resp)
	donnees, ok := corps["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, donnees, 3)
}

func TestReinitialiser(t *testing.T) {
	configurerEnvironnement("development")
	app := nouvelleApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extensions/reinitialiser", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusOK, resp.StatusCode)
}

func TestExporterRapport(t *testing.T) {
	configurerEnvironnement("development")
	app := nouvelleApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/rapports/export?format=csv", nil))
	require.NoError(t, err)
	assert.Equal(t, common.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/rapports/export?format=pdf", nil))
	require.NoError(t, err)
	assert.Equal(t, common.StatusBadRequest, resp.StatusCode)
}

func TestRapportControle(t *testing.T) {
	configurerEnvironnement("development")
	app := nouvelleApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/rapports/controle", nil))
	require.NoError(t, err)
	assert.Equal(t, common.StatusOK, resp.StatusCode)

	corps := decoderCorps(t, resp)
	donnees, ok := corps["data"].(map[string]interface{})
	require.True(t, ok)
	scores, ok := donnees["scores"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(100), scores["scoreGlobal"])
}

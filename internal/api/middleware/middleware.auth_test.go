package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin_ga/config"
	"admin_ga/internal/common"
	"admin_ga/internal/global"
	"admin_ga/internal/systeme/models"
)

func TestMain(m *testing.M) {
	// Valeurs globales minimales : secret de test, mode production pour que
	// le bypass développement ne masque pas les cas d'erreur.
	configurerEnvironnement("production")
	m.Run()
}

func configurerEnvironnement(goEnv string) {
	global.ServerConfig = &config.Configuration{
		JwtSecret: "secret-de-test",
		GoEnv:     goEnv,
	}
}

// appVerification monte une route qui renvoie le verdict de VerifierRequete.
func appVerification() *fiber.App {
	app := fiber.New()
	app.Get("/protegee", func(c fiber.Ctx) error {
		if err := VerifierRequete(c); err != nil {
			return c.Status(common.StatusUnauthorized).SendString(err.Error())
		}
		return c.SendString("ok")
	})
	return app
}

func TestVerifierRequete_SansToken(t *testing.T) {
	configurerEnvironnement("production")
	app := appVerification()

	req := httptest.NewRequest(http.MethodGet, "/protegee", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusUnauthorized, resp.StatusCode)
}

func TestVerifierRequete_HeaderMalForme(t *testing.T) {
	configurerEnvironnement("production")
	app := appVerification()

	req := httptest.NewRequest(http.MethodGet, "/protegee", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusUnauthorized, resp.StatusCode)
}

func TestVerifierRequete_TokenValide(t *testing.T) {
	configurerEnvironnement("production")
	token, err := NouveauToken("user_0001", "jean.ondo@dgdi.gouv.ga", models.RoleAdmin, time.Hour)
	require.NoError(t, err)

	app := appVerification()
	req := httptest.NewRequest(http.MethodGet, "/protegee", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusOK, resp.StatusCode)
}

func TestVerifierRequete_TokenExpire(t *testing.T) {
	configurerEnvironnement("production")
	token, err := NouveauToken("user_0001", "jean.ondo@dgdi.gouv.ga", models.RoleAdmin, -time.Minute)
	require.NoError(t, err)

	app := appVerification()
	req := httptest.NewRequest(http.MethodGet, "/protegee", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusUnauthorized, resp.StatusCode)
}

func TestVerifierRequete_TokenIllisible(t *testing.T) {
	configurerEnvironnement("production")
	app := appVerification()

	req := httptest.NewRequest(http.MethodGet, "/protegee", nil)
	req.Header.Set("Authorization", "Bearer pas-un-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusUnauthorized, resp.StatusCode)
}

func TestVerifierRequete_BypassDeveloppement(t *testing.T) {
	configurerEnvironnement("development")
	defer configurerEnvironnement("production")
	app := appVerification()

	req := httptest.NewRequest(http.MethodGet, "/protegee", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_RefuseEnProduction(t *testing.T) {
	configurerEnvironnement("production")
	app := fiber.New()
	groupe := app.Group("/api")
	groupe.Use(AuthMiddleware())
	groupe.Get("/ressource", func(c fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/ressource", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_PasseAvecToken(t *testing.T) {
	configurerEnvironnement("production")
	token, err := NouveauToken("user_0002", "marie.nzeng@dgi.gouv.ga", models.RoleManager, time.Hour)
	require.NoError(t, err)

	app := fiber.New()
	groupe := app.Group("/api")
	groupe.Use(AuthMiddleware())
	groupe.Get("/ressource", func(c fiber.Ctx) error {
		assert.Equal(t, "user_0002", c.Locals("user_id"))
		assert.Equal(t, models.RoleManager, c.Locals("user_role"))
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/ressource", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusOK, resp.StatusCode)
}

package middleware

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"admin_ga/internal/common"
	"admin_ga/internal/global"
	"admin_ga/internal/logger"
	"admin_ga/internal/systeme/models"
	"admin_ga/internal/utility"
)

// ClaimsSession sont les claims portés par les tokens de session du portail.
type ClaimsSession struct {
	Email string             `json:"email"`
	Role  models.RoleSysteme `json:"role"`
	jwt.RegisteredClaims
}

// AuthManager vérifie les tokens de session et met en cache les claims
// validés pour éviter de re-vérifier la signature à chaque requête.
type AuthManager struct {
	Cache *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager retourne l'instance unique de l'AuthManager.
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		authManagerInstance = &AuthManager{
			Cache: utility.NewCache(5*time.Minute, 10*time.Minute),
		}
	})
	return authManagerInstance
}

// NouveauToken émet un token de session HS256 signé avec le secret du
// serveur, valable duree.
func NouveauToken(utilisateurID, email string, role models.RoleSysteme, duree time.Duration) (string, error) {
	claims := ClaimsSession{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   utilisateurID,
			Issuer:    "admin_ga",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duree)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signe, err := token.SignedString([]byte(global.ServerConfig.JwtSecret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken,
			"Impossible d'émettre le token de session", common.StatusInternalServerError, err.Error())
	}
	return signe, nil
}

// verifierToken valide la signature et l'expiration d'un token, en passant
// par le cache des claims déjà validés.
func (am *AuthManager) verifierToken(token string) (*ClaimsSession, error) {
	if cached, found := am.Cache.Get("session:" + token); found {
		claims := cached.(*ClaimsSession)
		if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
			am.Cache.Delete("session:" + token)
			return nil, common.ErrTokenExpired
		}
		return claims, nil
	}

	claims := &ClaimsSession{}
	parse, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(global.ServerConfig.JwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !parse.Valid {
		return nil, common.ErrTokenInvalid
	}

	am.Cache.Set("session:"+token, claims)
	return claims, nil
}

// VerifierRequete applique la même politique d'accès que AuthMiddleware
// (bypass développement compris) mais laisse l'appelant construire la
// réponse. Utilisé par les routes dont le format de réponse est imposé.
func VerifierRequete(c fiber.Ctx) error {
	if global.ServerConfig != nil && global.ServerConfig.EstDeveloppement() {
		return nil
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return common.ErrTokenMissing
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return common.ErrTokenInvalid
	}
	_, err := GetAuthManager().verifierToken(parts[1])
	return err
}

// AuthMiddleware protège une route par token Bearer. En environnement de
// développement (GO_ENV=development, ou VERCEL_ENV présent et différent de
// production), l'authentification est court-circuitée.
func AuthMiddleware() fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		if global.ServerConfig != nil && global.ServerConfig.EstDeveloppement() {
			c.Locals("user_id", "dev")
			c.Locals("user_role", models.RoleAdmin)
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Header Authorization absent")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		claims, err := authManager.verifierToken(parts[1])
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("Token de session rejeté")
			HandleErrorResponse(c, err)
			return nil
		}

		c.Locals("user_id", claims.Subject)
		c.Locals("user_email", claims.Email)
		c.Locals("user_role", claims.Role)

		return c.Next()
	}
}

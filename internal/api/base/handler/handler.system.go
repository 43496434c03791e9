package basehdl

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"admin_ga/internal/common"
	"admin_ga/internal/global"
)

// Version de l'application, figée au build via -ldflags "-X ...".
var AppVersion = "dev"

// HealthCheck vérifie l'état du service.
// @Summary Vérifie l'état du service
// @Description État de l'API et de l'environnement d'exécution
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service opérationnel"
// @Router /health [get]
func HealthCheck(c fiber.Ctx) error {
	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services": fiber.Map{
			"api": "ok",
		},
	}
	if global.ServerConfig != nil {
		healthData["environnement"] = global.ServerConfig.GoEnv
	}

	return c.Status(common.StatusOK).JSON(fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    healthData,
		"status":  "success",
	})
}

// Version expose la version du binaire.
func Version(c fiber.Ctx) error {
	return c.Status(common.StatusOK).JSON(fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    fiber.Map{"version": AppVersion},
		"status":  "success",
	})
}

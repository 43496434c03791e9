package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// AuditAction représente une action auditée
type AuditAction struct {
	Action       string                 `json:"action"`        // Nom de l'action (ex : "extension_ajout_organisme")
	UserID       string                 `json:"user_id"`       // ID de l'utilisateur à l'origine
	ResourceID   string                 `json:"resource_id"`   // ID de la ressource concernée
	ResourceType string                 `json:"resource_type"` // Type de ressource (ex : "organisme", "utilisateur")
	IP           string                 `json:"ip"`            // Adresse IP
	UserAgent    string                 `json:"user_agent"`    // User agent
	Details      map[string]interface{} `json:"details"`       // Détails supplémentaires
	Timestamp    time.Time              `json:"timestamp"`     // Horodatage
}

// LogAction enregistre une action d'audit
func LogAction(action string, c fiber.Ctx, details map[string]interface{}) {
	auditLogger := GetAuditLogger()

	if details == nil {
		details = make(map[string]interface{})
	}

	audit := AuditAction{
		Action:    action,
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
		Details:   details,
		Timestamp: time.Now(),
	}

	if userID := c.Locals("user_id"); userID != nil {
		if uid, ok := userID.(string); ok {
			audit.UserID = uid
		}
	}

	if requestID := c.Get("X-Request-ID"); requestID != "" {
		audit.Details["request_id"] = requestID
	}

	auditLogger.WithFields(logrus.Fields{
		"action":        audit.Action,
		"user_id":       audit.UserID,
		"resource_id":   audit.ResourceID,
		"resource_type": audit.ResourceType,
		"ip":            audit.IP,
		"user_agent":    audit.UserAgent,
		"details":       audit.Details,
		"timestamp":     audit.Timestamp,
	}).Info("Audit log")
}

// LogExtension journalise les mutations du registre d'extensions
func LogExtension(operation string, resourceType string, resourceID string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["operation"] = operation
	details["resource_type"] = resourceType
	details["resource_id"] = resourceID

	LogAction("extension_"+operation, c, details)
}

package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// typesOrganismeValides recense les types d'organisme admis par le système.
// Doit rester aligné avec les constantes de admin_ga/internal/systeme/models.
var typesOrganismeValides = map[string]bool{
	"MINISTERE":              true,
	"DIRECTION_GENERALE":     true,
	"ETABLISSEMENT_PUBLIC":   true,
	"ENTREPRISE_PUBLIQUE":    true,
	"INSTITUTION_SUPREME":    true,
	"MAIRIE":                 true,
	"PREFECTURE":             true,
	"PROVINCE":               true,
	"ORGANISME_SOCIAL":       true,
	"INSTITUTION_JUDICIAIRE": true,
	"SERVICE_SPECIALISE":     true,
	"AUTRE":                  true,
}

// rolesSystemeValides recense les rôles système admis
var rolesSystemeValides = map[string]bool{
	"ADMIN":        true,
	"MANAGER":      true,
	"USER":         true,
	"RECEPTIONIST": true,
	"AGENT":        true,
}

var codeOrganismeRegex = regexp.MustCompile(`^[A-Z][A-Z0-9_]{1,31}$`)

// InitValidator initialise et enregistre les validateurs personnalisés
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("code_organisme", validateCodeOrganisme)
	_ = Validate.RegisterValidation("type_organisme", validateTypeOrganisme)
	_ = Validate.RegisterValidation("role_systeme", validateRoleSysteme)
}

// validateNoXSS refuse les motifs XSS courants
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateCodeOrganisme vérifie le format d'un code organisme :
// majuscules, chiffres et underscores, 2 à 32 caractères.
func validateCodeOrganisme(fl validator.FieldLevel) bool {
	return codeOrganismeRegex.MatchString(fl.Field().String())
}

// validateTypeOrganisme vérifie l'appartenance au jeu fermé des types
func validateTypeOrganisme(fl validator.FieldLevel) bool {
	return typesOrganismeValides[fl.Field().String()]
}

// validateRoleSysteme vérifie l'appartenance au jeu fermé des rôles
func validateRoleSysteme(fl validator.FieldLevel) bool {
	return rolesSystemeValides[fl.Field().String()]
}

package common

import "errors"

// Constantes de statut HTTP
const (
	// Codes de succès (2xx)
	StatusOK        = 200 // Succès
	StatusCreated   = 201 // Création réussie
	StatusAccepted  = 202 // Requête acceptée
	StatusNoContent = 204 // Succès sans contenu

	// Codes d'erreur client (4xx)
	StatusBadRequest      = 400 // Requête invalide
	StatusUnauthorized    = 401 // Non authentifié
	StatusForbidden       = 403 // Accès refusé
	StatusNotFound        = 404 // Ressource introuvable
	StatusConflict        = 409 // Conflit de données
	StatusTooManyRequests = 429 // Trop de requêtes

	// Codes d'erreur serveur (5xx)
	StatusInternalServerError = 500 // Erreur interne
	StatusNotImplemented      = 501 // Fonctionnalité non implémentée
	StatusServiceUnavailable  = 503 // Service indisponible
)

// Messages de réponse
const (
	// Messages de succès
	MsgSuccess = "Opération réussie"
	MsgCreated = "Création réussie"

	// Messages d'erreur
	MsgBadRequest      = "Requête invalide"
	MsgUnauthorized    = "Veuillez vous authentifier"
	MsgForbidden       = "Accès refusé"
	MsgNotFound        = "Ressource introuvable"
	MsgConflict        = "Conflit de données"
	MsgTooManyRequests = "Trop de requêtes, veuillez réessayer plus tard"
	MsgInternalError   = "Erreur système"

	// Messages liés aux tokens
	MsgTokenMissing = "Token d'authentification manquant"
	MsgTokenInvalid = "Token invalide"
	MsgTokenExpired = "Session expirée"

	// Messages de validation
	MsgValidationError = "Données invalides"
	MsgInvalidFormat   = "Format de données invalide"
)

// ErrorCode définit un code d'erreur détaillé
type ErrorCode struct {
	Code        string // Code d'erreur (ex : AUTH_001)
	Category    string // Catégorie (ex : Authentication)
	SubCategory string // Sous-catégorie (ex : Token)
	Description string // Description détaillée
}

// Codes d'erreur hiérarchisés du système
var (
	// Erreurs système (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Erreur système interne",
	}

	// Erreurs d'authentification (AUTH_xxx)
	ErrCodeAuth = ErrorCode{
		Code:        "AUTH",
		Category:    "Authentication",
		SubCategory: "General",
		Description: "Erreur d'authentification générale",
	}

	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Erreur liée au token",
	}

	// Erreurs de validation (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Erreur de validation générale",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Erreur de données en entrée",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Erreur de format de données",
	}

	// Erreurs du registre système (REG_xxx)
	ErrCodeRegistre = ErrorCode{
		Code:        "REG",
		Category:    "Registre",
		SubCategory: "General",
		Description: "Erreur du registre système",
	}

	ErrCodeRegistreDuplique = ErrorCode{
		Code:        "REG_001",
		Category:    "Registre",
		SubCategory: "Duplicate",
		Description: "Code ou email déjà présent dans le registre",
	}

	ErrCodeRegistreIntrouvable = ErrorCode{
		Code:        "REG_002",
		Category:    "Registre",
		SubCategory: "Lookup",
		Description: "Entrée introuvable dans le registre",
	}

	// Erreurs de génération (GEN_xxx)
	ErrCodeGeneration = ErrorCode{
		Code:        "GEN_001",
		Category:    "Generation",
		SubCategory: "Catalogue",
		Description: "Catalogue incohérent ou génération impossible",
	}

	// Erreurs métier (BIZ_xxx)
	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "État métier invalide",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Opération métier invalide",
	}
)

// Error définit la structure d'erreur détaillée du système
type Error struct {
	Code       ErrorCode // Code d'erreur détaillé
	Message    string    // Message d'erreur
	StatusCode int       // Statut HTTP associé
	Details    any       // Détails supplémentaires
}

// Error retourne le message de l'erreur
func (e *Error) Error() string {
	return e.Message
}

// Is compare l'erreur avec une erreur cible (support errors.Is)
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError crée une erreur complète
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Erreurs sentinelles
var (
	// Erreurs d'authentification
	ErrTokenExpired = NewError(ErrCodeAuthToken, MsgTokenExpired, StatusUnauthorized, nil)
	ErrTokenInvalid = NewError(ErrCodeAuthToken, MsgTokenInvalid, StatusUnauthorized, nil)
	ErrTokenMissing = NewError(ErrCodeAuthToken, MsgTokenMissing, StatusUnauthorized, nil)

	// Erreurs de validation
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Données en entrée invalides", StatusBadRequest, nil)
	ErrInvalidEmail  = NewError(ErrCodeValidationInput, "Email au format invalide", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, MsgInvalidFormat, StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Champ obligatoire manquant", StatusBadRequest, nil)

	// Erreurs du registre
	ErrCodeDuplique         = NewError(ErrCodeRegistreDuplique, "Ce code existe déjà dans le système", StatusConflict, nil)
	ErrEmailDuplique        = NewError(ErrCodeRegistreDuplique, "Cet email existe déjà dans le système", StatusConflict, nil)
	ErrOrganismeIntrouvable = NewError(ErrCodeRegistreIntrouvable, "Organisme introuvable", StatusNotFound, nil)
	ErrNotFound             = NewError(ErrCodeRegistreIntrouvable, MsgNotFound, StatusNotFound, nil)

	// Erreurs métier
	ErrInvalidState     = NewError(ErrCodeBusinessState, "État invalide", StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "Opération invalide", StatusBadRequest, nil)
)

// EstErreurValidation indique si l'erreur est une erreur de validation ou de duplication,
// attendue côté appelant (scripts : log-and-continue ; API : statut 4xx).
func EstErreurValidation(err error) bool {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.StatusCode >= 400 && customErr.StatusCode < 500
	}
	return false
}

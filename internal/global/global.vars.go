package global

import (
	"admin_ga/config"

	"github.com/go-playground/validator/v10"
)

// Variables globales de l'application
var Validate *validator.Validate       // Validateur de données
var ServerConfig *config.Configuration // Configuration du serveur

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration contient les informations statiques nécessaires au
// fonctionnement de l'application.
type Configuration struct {
	Address   string `env:"ADDRESS" envDefault:"8080"`       // Port d'écoute du serveur
	GoEnv     string `env:"GO_ENV" envDefault:"development"` // Environnement d'exécution (development, production)
	VercelEnv string `env:"VERCEL_ENV" envDefault:""`        // Environnement Vercel (vide hors déploiement Vercel)
	JwtSecret string `env:"JWT_SECRET,required"`             // Secret de signature des tokens JWT

	// Génération du système
	Graine int64 `env:"GRAINE_GENERATION" envDefault:"2025"` // Graine du générateur pseudo-aléatoire

	// CORS
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Origins autorisés (séparés par des virgules, * = tous)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Autoriser l'envoi de credentials

	// Rate limiting
	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`      // Requêtes max dans la fenêtre (0 = désactivé)
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"`    // Durée de la fenêtre (secondes)
	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // Activer le rate limiting

	// TLS/HTTPS
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Activer HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Chemin du certificat (.crt ou .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Chemin de la clé privée (.key)
}

// EstDeveloppement indique si le bypass d'authentification de développement
// s'applique : GO_ENV=development, ou déploiement Vercel hors production.
func (c *Configuration) EstDeveloppement() bool {
	if c.GoEnv == "development" {
		return true
	}
	return c.VercelEnv != "" && c.VercelEnv != "production"
}

// getEnvPath retourne le chemin du fichier env selon l'environnement
func getEnvPath() string {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// fmt.Printf car le logger n'est pas encore initialisé ici
		fmt.Printf("Impossible d'obtenir le répertoire courant : %v\n", err)
		return ""
	}

	// Remonte l'arborescence jusqu'à trouver config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig lit la configuration depuis le fichier env de l'environnement.
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("Répertoire config/env introuvable\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		fmt.Printf("Impossible de charger le fichier env %s : %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Erreur lors du parsing de la configuration : %+v\n", err)
		return nil
	}

	return &cfg
}

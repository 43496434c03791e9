package logger

import (
	"os"
	"strconv"
	"strings"
)

// LogConfig contient la configuration du système de logging
type LogConfig struct {
	// Niveau de log : trace, debug, info, warn, error, fatal
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format : json, text
	Format string `env:"LOG_FORMAT" envDefault:"text"`

	// Sortie : file, stdout, both
	Output string `env:"LOG_OUTPUT" envDefault:"both"`

	// Rotation des fichiers
	MaxSize    int  `env:"LOG_MAX_SIZE" envDefault:"100"`  // Mo
	MaxBackups int  `env:"LOG_MAX_BACKUPS" envDefault:"7"` // Nombre d'anciens fichiers conservés
	MaxAge     int  `env:"LOG_MAX_AGE" envDefault:"7"`     // Nombre de jours de conservation
	Compress   bool `env:"LOG_COMPRESS" envDefault:"true"` // Compression des anciens fichiers

	// Chemins des fichiers
	LogPath   string `env:"LOG_PATH" envDefault:"./logs"`
	AppFile   string `env:"LOG_APP_FILE" envDefault:"app.log"`
	AuditFile string `env:"LOG_AUDIT_FILE" envDefault:"audit.log"`
	ErrorFile string `env:"LOG_ERROR_FILE" envDefault:"error.log"`

	// Filtre optionnel par module (liste séparée par des virgules, "*" = tous)
	FilterModules string `env:"LOG_FILTER_MODULES" envDefault:"*"`
}

// DefaultConfig retourne la configuration par défaut, ajustée selon GO_ENV
// puis surchargée par les variables d'environnement.
func DefaultConfig() *LogConfig {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	config := &LogConfig{
		Level:         "info",
		Format:        "text",
		Output:        "both",
		MaxSize:       100,
		MaxBackups:    7,
		MaxAge:        7,
		Compress:      true,
		LogPath:       "./logs",
		AppFile:       "app.log",
		AuditFile:     "audit.log",
		ErrorFile:     "error.log",
		FilterModules: "*",
	}

	// Ajustement selon l'environnement
	if env == "development" {
		config.Level = "debug"
		config.Format = "text"
	} else {
		config.Level = "info"
		config.Format = "json"
	}

	// Surcharge depuis les variables d'environnement
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Level = strings.ToLower(level)
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		config.Format = strings.ToLower(format)
	}
	if output := os.Getenv("LOG_OUTPUT"); output != "" {
		config.Output = strings.ToLower(output)
	}
	if maxSizeStr := os.Getenv("LOG_MAX_SIZE"); maxSizeStr != "" {
		if maxSize, err := strconv.Atoi(maxSizeStr); err == nil && maxSize > 0 {
			config.MaxSize = maxSize
		}
	}
	if maxBackupsStr := os.Getenv("LOG_MAX_BACKUPS"); maxBackupsStr != "" {
		if maxBackups, err := strconv.Atoi(maxBackupsStr); err == nil && maxBackups >= 0 {
			config.MaxBackups = maxBackups
		}
	}
	if maxAgeStr := os.Getenv("LOG_MAX_AGE"); maxAgeStr != "" {
		if maxAge, err := strconv.Atoi(maxAgeStr); err == nil && maxAge > 0 {
			config.MaxAge = maxAge
		}
	}
	if compressStr := os.Getenv("LOG_COMPRESS"); compressStr != "" {
		if compress, err := strconv.ParseBool(compressStr); err == nil {
			config.Compress = compress
		}
	}
	if logPath := os.Getenv("LOG_PATH"); logPath != "" {
		config.LogPath = logPath
	}
	if appFile := os.Getenv("LOG_APP_FILE"); appFile != "" {
		config.AppFile = appFile
	}
	if auditFile := os.Getenv("LOG_AUDIT_FILE"); auditFile != "" {
		config.AuditFile = auditFile
	}
	if errorFile := os.Getenv("LOG_ERROR_FILE"); errorFile != "" {
		config.ErrorFile = errorFile
	}
	if filterModules := os.Getenv("LOG_FILTER_MODULES"); filterModules != "" {
		config.FilterModules = filterModules
	}

	return config
}

package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v3"

	"admin_ga/internal/global"
	"admin_ga/internal/logger"
)

// Initialise et configure le logger de l'application.
func initLogger() {
	// La configuration se lit dans les variables d'environnement
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Échec de l'initialisation du logger : %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger initialisé")
}

// Démarre le serveur Fiber, en HTTPS si la configuration l'active.
func mainThread(app *fiber.App) {
	cfg := global.ServerConfig
	address := ":" + cfg.Address

	log := logger.GetAppLogger()

	// Résout un chemin relatif depuis la racine du dépôt (répertoire
	// qui contient config/env), pour certificats et clés.
	resolvePath := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		currentDir, err := os.Getwd()
		if err != nil {
			return path
		}
		for {
			envDir := filepath.Join(currentDir, "config", "env")
			if _, err := os.Stat(envDir); err == nil {
				return filepath.Join(currentDir, path)
			}
			parentDir := filepath.Dir(currentDir)
			if parentDir == currentDir {
				return path
			}
			currentDir = parentDir
		}
	}

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("Certificat TLS introuvable : %s (résolu depuis : %s)", certPath, cfg.TLSCertFile)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("Clé TLS introuvable : %s (résolue depuis : %s)", keyPath, cfg.TLSKeyFile)
		}

		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			log.Fatalf("Erreur de chargement du certificat TLS : %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Erreur de création du listener : %v", err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    certPath,
			"key":     keyPath,
		}).Info("Démarrage du serveur en HTTPS/TLS")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Erreur du listener Fiber avec TLS : %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Démarrage du serveur en HTTP")

		listenConfig := fiber.ListenConfig{}
		if err := app.Listen(address, listenConfig); err != nil {
			log.Fatalf("Erreur de Fiber Listen : %v", err)
		}
	}
}

func main() {
	initLogger()
	InitGlobal()

	service := InitSysteme(context.Background())

	app := InitFiberApp(service)
	mainThread(app)
}

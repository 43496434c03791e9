package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"admin_ga/config"
	rhsvc "admin_ga/internal/api/rh/service"
	"admin_ga/internal/global"
	"admin_ga/internal/systeme/extensions"
	"admin_ga/internal/systeme/generateur"
	"admin_ga/internal/systeme/unification"
)

// InitGlobal initialise les variables globales de l'application.
func InitGlobal() {
	initValidator()
	initConfig()
}

// Initialise le validateur (enregistre les validateurs personnalisés :
// no_xss, code_organisme, type_organisme, role_systeme).
func initValidator() {
	global.InitValidator()
	logrus.Info("Validateur initialisé")
}

// Initialise la configuration du serveur.
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Échec de l'initialisation de la configuration : configuration nulle")
	}
	logrus.Info("Configuration du serveur initialisée")
}

// InitSysteme génère le système de base puis assemble le registre
// d'extensions, le service d'unification et le service RH.
func InitSysteme(ctx context.Context) *rhsvc.Service {
	base, err := generateur.ImplementerSystemeComplet(ctx, global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Échec de la génération du système de base : %v", err)
	}

	registre := extensions.NouveauRegistre(base)
	unificationService := unification.NouveauService(registre)
	service := rhsvc.NewService(registre, unificationService)

	logrus.WithFields(map[string]interface{}{
		"organismes":   len(base.Organismes),
		"postes":       len(base.Postes),
		"utilisateurs": len(base.Utilisateurs),
		"graine":       global.ServerConfig.Graine,
	}).Info("Système de base généré")

	return service
}

package main

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/morningmoney/internal/config"
	"github.com/carson-networks/morningmoney/internal/logging"
	"github.com/carson-networks/morningmoney/internal/storage"
)

// Standalone schema migration for deployments that prefer not to go through
// the CLI. Reads the same MM_* environment as the app.
func main() {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}
	logging.SetupLogging(env.LogLevel)

	if err := storage.EnsureDir(env.DBPath); err != nil {
		logrus.WithError(err).Fatal("storage.EnsureDir")
		return
	}

	status, err := storage.RunMigrations(storage.DSN(env.DBPath))
	if err != nil {
		logrus.WithError(err).Fatal("storage.RunMigrations")
		return
	}

	logrus.WithFields(logrus.Fields{
		"dbPath":               env.DBPath,
		"preMigrationVersion":  status.PreMigrationVersion,
		"postMigrationVersion": status.PostMigrationVersion,
	}).Info("Migration status")
}

package main

import (
	"errors"

	"github.com/pressly/goose/v3"

	appfs "github.com/aulahub/academia/fs"
	"github.com/aulahub/academia/storage/database"
)

var (
	gooseRunFunc = goose.Run // mockable

	errNoDatabase = errors.New("migrations need a PostgreSQL database (DATABASE_INMEMORY is set)")
)

func (cli *commandLine) migrate(args []string) error {
	if cli.db == nil {
		return errNoDatabase
	}
	if err := database.InitMigrations(); err != nil {
		return err
	}
	return gooseRunFunc(args[0], cli.db, appfs.MigrationsDir, args[1:]...)
}

package database

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Migrator func(db *gorm.DB) error

type configuration struct {
	migrations []Migrator
}

type Configurator func(c *configuration)

func SetMigrations(migrations ...Migrator) Configurator {
	return func(c *configuration) {
		c.migrations = append(c.migrations, migrations...)
	}
}

func connectionString() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))
}

func Connect(l logrus.FieldLogger, configurators ...Configurator) *gorm.DB {
	c := &configuration{}
	for _, configurator := range configurators {
		configurator(c)
	}

	var db *gorm.DB
	var err error
	for attempt := 0; attempt < 10; attempt++ {
		db, err = gorm.Open(postgres.Open(connectionString()), &gorm.Config{})
		if err == nil {
			break
		}
		l.WithError(err).Warnf("Unable to connect to database. Retrying.")
		time.Sleep(time.Duration(attempt+1) * time.Second)
	}
	if err != nil {
		l.WithError(err).Fatalf("Unable to connect to database.")
	}

	for _, migration := range c.migrations {
		err = migration(db)
		if err != nil {
			l.WithError(err).Fatalf("Migrating schema.")
		}
	}
	return db
}

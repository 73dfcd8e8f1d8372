// Package db opens the GORM database connection used by the service.
package db

import (
	"log"
	"os"
	"strings"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "github.com/wmastover/labupops-lead-qualifier/internal/feature/auth/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/places/adapters/leadstore"
)

// OpenDB connects to the database configured through DB_DSN and returns the
// connection. A DSN starting with postgres:// (or containing host=) selects
// the Postgres driver; anything else is treated as a SQLite file path.
// Retries for up to 60 seconds so the service survives a database that is
// still starting up.
func OpenDB() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "leads.db"
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(openDialector(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&leadstore.LeadModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

func openDialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return gpostgres.Open(dsn)
	}
	return gsqlite.Open(dsn)
}

// Command migrate runs schema operations for the backend.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"connectgrower/internal/config"
	"connectgrower/internal/database"

	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate <up|status|reset> [-force]")
}

func run() error {
	force := flag.Bool("force", false, "allow reset outside development and test")
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Connect migrates on open; reset needs the raw connection first.
	dialector, err := database.Dialector(cfg)
	if err != nil {
		return err
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	cmd := strings.ToLower(strings.TrimSpace(flag.Arg(0)))
	switch cmd {
	case "up":
		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Println("schema is up to date")
	case "status":
		for _, table := range tableNames(db) {
			state := "missing"
			if db.Migrator().HasTable(table) {
				state = "present"
			}
			log.Printf("%-20s %s", table, state)
		}
	case "reset":
		if cfg.Env != "development" && cfg.Env != "test" && !*force {
			return fmt.Errorf("refusing to reset a %s database without -force", cfg.Env)
		}
		models := database.PersistentModels()
		for i := len(models) - 1; i >= 0; i-- {
			if err := db.Migrator().DropTable(models[i]); err != nil {
				return fmt.Errorf("drop %T: %w", models[i], err)
			}
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Println("database reset")
	default:
		return usage()
	}

	return nil
}

func tableNames(db *gorm.DB) []string {
	var names []string
	for _, m := range database.PersistentModels() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			names = append(names, fmt.Sprintf("%T", m))
			continue
		}
		names = append(names, stmt.Schema.Table)
	}
	return names
}

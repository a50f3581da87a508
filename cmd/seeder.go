package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with reference data",
	Long:  `Seed the lookup tables and an initial admin user. Safe to run repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlxDB.Close()

		db, err := initGorm(sqlxDB)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		seedNameTable(db, "positions", "Officer", "Inspector", "Clerk", "Director")
		seedNameTable(db, "absence_types", "Vacation", "Medical leave", "Training", "Unjustified")
		seedNameTable(db, "shift_types", "Day shift", "Night shift")
		// The per-diem workflow expects a row named "pending"; new requests
		// default to it.
		seedNameTable(db, "per_diem_statuses", "pending", "approved", "rejected", "paid")
		seedNameTable(db, "weapon_types", "Pistol", "Rifle", "Shotgun")

		seedStates(db)
		seedRootUnit(db)
		seedAdminUser(db)

		fmt.Println("Seeding complete")
	},
}

func seedNameTable(db *gorm.DB, table string, names ...string) {
	for _, name := range names {
		var exists int
		row := db.Raw(fmt.Sprintf("SELECT 1 FROM %s WHERE name = ?", table), name).Row()
		if err := row.Scan(&exists); err == nil {
			continue
		}
		if err := db.Exec(
			fmt.Sprintf("INSERT INTO %s (name, is_active, created_at, updated_at) VALUES (?, true, now(), now())", table),
			name,
		).Error; err != nil {
			log.Fatalf("failed to seed %s %q: %v", table, name, err)
		}
		fmt.Printf("Seeded %s: %s\n", table, name)
	}
}

func seedStates(db *gorm.DB) {
	states := []struct {
		name string
		code string
	}{
		{"Central District", "CD"},
		{"Northern District", "ND"},
	}

	for _, st := range states {
		var exists int
		row := db.Raw("SELECT 1 FROM states WHERE name = ?", st.name).Row()
		if err := row.Scan(&exists); err == nil {
			continue
		}
		if err := db.Exec(
			"INSERT INTO states (name, code, is_active, created_at, updated_at) VALUES (?, ?, true, now(), now())",
			st.name, st.code,
		).Error; err != nil {
			log.Fatalf("failed to seed state %q: %v", st.name, err)
		}

		var stateID int64
		if err := db.Raw("SELECT id FROM states WHERE name = ?", st.name).Row().Scan(&stateID); err != nil {
			log.Fatalf("failed to read back state %q: %v", st.name, err)
		}
		if err := db.Exec(
			"INSERT INTO municipalities (name, state_id, is_active, created_at, updated_at) VALUES (?, ?, true, now(), now())",
			st.name+" Capital", stateID,
		).Error; err != nil {
			log.Fatalf("failed to seed municipality for %q: %v", st.name, err)
		}
		fmt.Printf("Seeded state: %s\n", st.name)
	}
}

func seedRootUnit(db *gorm.DB) {
	const name = "Headquarters"
	var exists int
	row := db.Raw("SELECT 1 FROM organizational_units WHERE name = ?", name).Row()
	if err := row.Scan(&exists); err == nil {
		return
	}
	if err := db.Exec(
		"INSERT INTO organizational_units (name, is_active, created_at, updated_at) VALUES (?, true, now(), now())",
		name,
	).Error; err != nil {
		log.Fatalf("failed to seed root unit: %v", err)
	}
	fmt.Println("Seeded organizational unit:", name)
}

func seedAdminUser(db *gorm.DB) {
	const email = "admin@erpro.local"

	var exists int
	row := db.Raw("SELECT 1 FROM users WHERE email = ?", email).Row()
	if err := row.Scan(&exists); err == nil {
		fmt.Println("admin user already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	if err := db.Exec(
		"INSERT INTO users (email, name, password_hash, is_admin, is_active, created_at, updated_at) VALUES (?, ?, ?, true, true, now(), now())",
		email, "Administrator", string(hash),
	).Error; err != nil {
		log.Fatalf("failed to insert admin user: %v", err)
	}
	fmt.Println("Seeded admin user:", email)
}

package main

import (
	"log"
	"os"

	"study-planner-be/internal/model"
	"study-planner-be/pkg/database"

	"github.com/joho/godotenv"
)

// Migrates the postgres session store. Only needed when SESSION_STORE is
// "postgres"; the server also auto-migrates on startup, so this exists for
// environments where the app user has no DDL rights.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(&model.StudySession{}); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}

package main

import (
	"context"
	"log"
	"telemedicina-service/internal/app/config"
	"telemedicina-service/internal/app/drivers/database"
	"telemedicina-service/internal/migration"
	"telemedicina-service/internal/pkg/utils"
	"time"
)

func main() {
	driverConfig := config.NewDriverConfig()

	db := database.NewPostgresDB(driverConfig)
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), utils.GetEnvDuration("MIGRATION_TIMEOUT", time.Minute))
	defer cancel()

	applied, err := migration.Run(ctx, db)
	if err != nil {
		log.Fatalf("Error executing migration: %v", err)
	}

	log.Printf("Applied %d migrations!\n", applied)
}

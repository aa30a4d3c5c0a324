package main

import (
	"fmt"
	"os"

	"flightboard-service/internal/domain/entity"
	"flightboard-service/internal/infrastructure/config"
	"flightboard-service/internal/interface/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Seeds the PostgreSQL flight table with the sample flights. Run once
// when switching the gateway from the in-memory table to Postgres.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		os.Exit(1)
	}
	if cfg.PostgresURI == "" {
		fmt.Println("POSTGRES_DSN is not set")
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		fmt.Println("Failed to connect to PostgreSQL:", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&repository.Flights{}); err != nil {
		fmt.Println("Migration failed:", err)
		os.Exit(1)
	}

	for _, rec := range entity.SampleFlights() {
		row := repository.Flights{
			FlightNumber:         rec.FlightNumber,
			Airline:              rec.Airline,
			DepartureTime:        rec.DepartureTime,
			ArrivalTime:          rec.ArrivalTime,
			DepartureDate:        rec.DepartureDate,
			Origin:               rec.Origin,
			OriginCity:           rec.OriginCity,
			Destination:          rec.Destination,
			DestinationCity:      rec.DestinationCity,
			Status:               string(rec.Status),
			Terminal:             rec.Terminal,
			Gate:                 rec.Gate,
			DelayMinutes:         rec.DelayMinutes,
			EstimatedArrivalTime: rec.EstimatedArrivalTime,
		}
		result := db.Where("flight_number = ?", row.FlightNumber).
			Assign(row).
			FirstOrCreate(&repository.Flights{})
		if result.Error != nil {
			fmt.Println("Seed failed for", row.FlightNumber, ":", result.Error)
			os.Exit(1)
		}
		fmt.Println("Seeded flight", row.FlightNumber)
	}
}

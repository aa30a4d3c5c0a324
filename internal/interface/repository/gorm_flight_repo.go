package repository

import (
	"context"
	"errors"
	"time"

	"flightboard-service/internal/domain/entity"
	"flightboard-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormFlightRepository implements FlightRepository against PostgreSQL,
// used when a DSN is configured instead of the seeded in-memory table.
type GormFlightRepository struct {
	db *gorm.DB
}

// NewGormFlightRepository creates a new GORM flight repository
func NewGormFlightRepository(db *gorm.DB) repository.FlightRepository {
	return &GormFlightRepository{
		db: db,
	}
}

// Flights GORM model for database mapping
type Flights struct {
	ID                   uint   `gorm:"primaryKey"`
	FlightNumber         string `gorm:"column:flight_number;unique"`
	Airline              string `gorm:"column:airline"`
	DepartureTime        string `gorm:"column:departure_time"`
	ArrivalTime          string `gorm:"column:arrival_time"`
	DepartureDate        string `gorm:"column:departure_date"`
	Origin               string `gorm:"column:origin"`
	OriginCity           string `gorm:"column:origin_city"`
	Destination          string `gorm:"column:destination"`
	DestinationCity      string `gorm:"column:destination_city"`
	Status               string `gorm:"column:status"`
	Terminal             string `gorm:"column:terminal"`
	Gate                 string `gorm:"column:gate"`
	DelayMinutes         int    `gorm:"column:delay_minutes"`
	EstimatedArrivalTime string `gorm:"column:estimated_arrival_time"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName overrides the default table name
func (Flights) TableName() string {
	return "m_flights"
}

func (f *Flights) toEntity() entity.FlightRecord {
	return entity.FlightRecord{
		FlightNumber:         f.FlightNumber,
		Airline:              f.Airline,
		DepartureTime:        f.DepartureTime,
		ArrivalTime:          f.ArrivalTime,
		DepartureDate:        f.DepartureDate,
		Origin:               f.Origin,
		OriginCity:           f.OriginCity,
		Destination:          f.Destination,
		DestinationCity:      f.DestinationCity,
		Status:               entity.FlightStatus(f.Status),
		Terminal:             f.Terminal,
		Gate:                 f.Gate,
		DelayMinutes:         f.DelayMinutes,
		EstimatedArrivalTime: f.EstimatedArrivalTime,
	}
}

// FindByNumber finds a flight by flight number. A miss maps to
// (nil, nil) so the adapter can answer with a soft miss payload.
func (r *GormFlightRepository) FindByNumber(ctx context.Context, flightNumber string) (*entity.FlightRecord, error) {
	var flight Flights
	result := r.db.WithContext(ctx).Where("flight_number = ?", flightNumber).First(&flight)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	rec := flight.toEntity()
	return &rec, nil
}

// Search filters by exact origin/destination equality, ordered by row id
// so results keep insertion order like the in-memory table.
func (r *GormFlightRepository) Search(ctx context.Context, origin, destination string) ([]entity.FlightRecord, error) {
	var flights []Flights
	result := r.db.WithContext(ctx).
		Where("origin = ? AND destination = ?", origin, destination).
		Order("id ASC").
		Find(&flights)
	if result.Error != nil {
		return nil, result.Error
	}

	matches := make([]entity.FlightRecord, 0, len(flights))
	for i := range flights {
		matches = append(matches, flights[i].toEntity())
	}
	return matches, nil
}

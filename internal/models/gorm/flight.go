package gorm

import (
	"time"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"
)

// Flight is one recorded flight. It holds non-owning references to its two
// airports; deleting a flight never touches them.
type Flight struct {
	ID                   string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	FlightNumber         *string   `gorm:"column:flight_number;type:varchar(20)"`
	Airline              *string   `gorm:"column:airline;type:varchar(100)"`
	AircraftType         *string   `gorm:"column:aircraft_type;type:varchar(100)"`
	AircraftRegistration *string   `gorm:"column:aircraft_registration;type:varchar(20)"`
	SeatNumber           *string   `gorm:"column:seat_number;type:varchar(10)"`
	FlightClass          *string   `gorm:"column:flight_class;type:varchar(30)"`
	Reason               *string   `gorm:"column:reason;type:varchar(30)"`
	Comments             *string   `gorm:"column:comments;type:text"`
	DepartureTime        time.Time `gorm:"column:departure_time;not null;index"`
	ArrivalTime          time.Time `gorm:"column:arrival_time;not null"`
	DepartureAirportID   string    `gorm:"column:departure_airport_id;type:varchar(36);not null;index"`
	ArrivalAirportID     string    `gorm:"column:arrival_airport_id;type:varchar(36);not null;index"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	DepartureAirport Airport `gorm:"foreignKey:DepartureAirportID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ArrivalAirport   Airport `gorm:"foreignKey:ArrivalAirportID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}

func (f *Flight) BeforeCreate(tx *gormlib.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

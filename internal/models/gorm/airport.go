package gorm

import (
	"time"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"
)

// UnknownCode is reported as the display code of an airport with neither
// an IATA nor an ICAO code.
const UnknownCode = "Unknown"

// Airport is a stored airport shared by every flight that references it.
// City and Country are always held in canonical (title) case.
type Airport struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	IATACode  *string   `gorm:"column:iata_code;type:varchar(64);uniqueIndex"`
	ICAOCode  *string   `gorm:"column:icao_code;type:varchar(4);uniqueIndex"`
	Name      string    `gorm:"column:name;type:text;not null"`
	City      string    `gorm:"column:city;type:varchar(100);not null"`
	Country   string    `gorm:"column:country;type:varchar(100);not null"`
	Latitude  float64   `gorm:"column:latitude;not null;default:0"`
	Longitude float64   `gorm:"column:longitude;not null;default:0"`
	Timezone  string    `gorm:"column:timezone;type:varchar(50)"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}

// BeforeCreate assigns a uuid so ids do not depend on the database dialect
func (a *Airport) BeforeCreate(tx *gormlib.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// DisplayCode returns the IATA code, else the ICAO code, else "Unknown".
// It is derived on every read and never stored.
func (a *Airport) DisplayCode() string {
	if a.IATACode != nil && *a.IATACode != "" {
		return *a.IATACode
	}
	if a.ICAOCode != nil && *a.ICAOCode != "" {
		return *a.ICAOCode
	}
	return UnknownCode
}

// HasKnownPosition reports whether the coordinates are something other than
// the (0,0) placeholder used for unresolved locations.
func (a *Airport) HasKnownPosition() bool {
	return a.Latitude != 0 || a.Longitude != 0
}

// Package model defines database models
package model

import "time"

// Fallback values stored when a field can't be derived from the request
const (
	FallbackIP      = "127.0.0.1"
	FallbackUnknown = "Unknown"
	FallbackDevice  = "desktop"
)

type Visitor struct {
	ID        string    `gorm:"primaryKey" json:"id" bson:"_id"`
	IP        string    `gorm:"not null" json:"ip" bson:"ip"`
	Country   string    `gorm:"not null" json:"country" bson:"country"`
	City      string    `gorm:"not null" json:"city" bson:"city"`
	Device    string    `gorm:"not null" json:"device" bson:"device"`
	Browser   string    `gorm:"not null" json:"browser" bson:"browser"`
	OS        string    `gorm:"not null" json:"os" bson:"os"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp" bson:"timestamp"`
}

// Complete reports whether every derived string field is populated
func (v *Visitor) Complete() bool {
	return v.IP != "" && v.Country != "" && v.City != "" &&
		v.Device != "" && v.Browser != "" && v.OS != ""
}

// Summary is the part of a visitor record sent back to the page
type Summary struct {
	Country string `json:"country"`
	Device  string `json:"device"`
}

func (v *Visitor) Summary() Summary {
	return Summary{
		Country: v.Country,
		Device:  v.Device,
	}
}

package models

import "strings"

// DeliveryZone prices delivery per country/state. An empty State matches
// the whole country.
type DeliveryZone struct {
	ID      uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Country string  `gorm:"not null;index" json:"country"`
	State   string  `json:"state"`
	Price   float64 `gorm:"not null" json:"price"`
	Active  bool    `gorm:"default:true" json:"active"`
}

// MatchZonePrice returns the delivery price for the given country/state.
// A state-level zone wins over a country-wide one. The second return is
// false when no zone matches.
func MatchZonePrice(zones []DeliveryZone, country, state string) (float64, bool) {
	var countryPrice float64
	var countryFound bool
	for _, z := range zones {
		if !z.Active || !strings.EqualFold(z.Country, country) {
			continue
		}
		if z.State != "" && strings.EqualFold(z.State, state) {
			return z.Price, true
		}
		if z.State == "" {
			countryPrice, countryFound = z.Price, true
		}
	}
	return countryPrice, countryFound
}

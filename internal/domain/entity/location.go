// Package entity contains the core business objects of the project.
package entity

// Country is geographic reference data keyed by a serial id and a unique ISO code.
type Country struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	ISO  string `json:"iso"` // ISO 3166-1 alpha-2 or alpha-3 code, upper case.
}

// State is a first-level subdivision of a Country.
type State struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CountryID int    `json:"countryId"`
}

// City belongs to a State and carries its coordinates.
type City struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	StateID   int     `json:"stateId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TimeZone is an IANA zone observed in a Country.
type TimeZone struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Abbreviation  string `json:"abbreviation"`
	GMTOffset     int    `json:"gmtOffset"`
	GMTOffsetName string `json:"gmtOffsetName"`
	TZName        string `json:"tzName"`
	ZoneName      string `json:"zoneName"`
	CountryID     int    `json:"countryId"`
}

// NearbyCity is a City paired with its distance from a query point.
type NearbyCity struct {
	City
	DistanceKm float64 `json:"distanceKm"`
}

// AddressInput references reference-data rows that make up a user's address.
type AddressInput struct {
	CountryID  *int `json:"countryId,omitempty"`
	StateID    *int `json:"stateId,omitempty"`
	CityID     *int `json:"cityId,omitempty"`
	TimeZoneID *int `json:"timeZoneId,omitempty"`
}

// IsEmpty reports whether no reference was supplied.
func (a *AddressInput) IsEmpty() bool {
	return a == nil || (a.CountryID == nil && a.StateID == nil && a.CityID == nil && a.TimeZoneID == nil)
}

package model

// CountryModel mirrors the 'countries' table. Reference tables use serial ids.
type CountryModel struct {
	ID   int    `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null;index"`
	ISO  string `gorm:"column:iso;type:varchar(3);not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}

// StateModel mirrors the 'states' table.
type StateModel struct {
	ID        int          `gorm:"primaryKey;autoIncrement"`
	Name      string       `gorm:"type:varchar(100);not null"`
	CountryID int          `gorm:"not null;index"`
	Country   CountryModel `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (StateModel) TableName() string {
	return "states"
}

// CityModel mirrors the 'cities' table.
type CityModel struct {
	ID        int        `gorm:"primaryKey;autoIncrement"`
	Name      string     `gorm:"type:varchar(100);not null"`
	StateID   int        `gorm:"not null;index"`
	State     StateModel `gorm:"constraint:OnDelete:CASCADE"`
	Latitude  float64    `gorm:"type:decimal(10,8)"`
	Longitude float64    `gorm:"type:decimal(11,8)"`
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}

// TimeZoneModel mirrors the 'timezones' table. (zone_name, country_id) is unique.
type TimeZoneModel struct {
	ID            int          `gorm:"primaryKey;autoIncrement"`
	Name          string       `gorm:"type:varchar(100);not null"`
	Abbreviation  string       `gorm:"type:varchar(10)"`
	GMTOffset     int          `gorm:"column:gmt_offset"`
	GMTOffsetName string       `gorm:"column:gmt_offset_name;type:varchar(20)"`
	TZName        string       `gorm:"column:tz_name;type:varchar(100)"`
	ZoneName      string       `gorm:"type:varchar(100);not null;uniqueIndex:idx_timezones_zone_country"`
	CountryID     int          `gorm:"not null;uniqueIndex:idx_timezones_zone_country"`
	Country       CountryModel `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (TimeZoneModel) TableName() string {
	return "timezones"
}

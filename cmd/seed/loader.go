package main

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mangahub/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

// Expected file names and headers inside the data directory.
const (
	countriesFile = "countries.csv"
	statesFile    = "states.csv"
	citiesFile    = "cities.csv"
	timezonesFile = "timezones.csv"
)

var (
	countriesHeader = []string{"id", "name", "iso"}
	statesHeader    = []string{"id", "name", "country_id"}
	citiesHeader    = []string{"id", "name", "state_id", "latitude", "longitude"}
	timezonesHeader = []string{"name", "abbreviation", "gmt_offset", "gmt_offset_name", "tz_name", "zone_name", "country_id"}
)

// ReferenceData is the full geographic hierarchy read from disk.
type ReferenceData struct {
	Countries []model.CountryModel
	States    []model.StateModel
	Cities    []model.CityModel
	TimeZones []model.TimeZoneModel
}

// CSVLoader reads the reference CSV files from a directory.
type CSVLoader struct {
	dataDir string
}

// NewCSVLoader creates a loader rooted at dataDir.
func NewCSVLoader(dataDir string) *CSVLoader {
	return &CSVLoader{dataDir: dataDir}
}

// Load reads every file and checks that child rows point at known parents.
func (l *CSVLoader) Load() (*ReferenceData, error) {
	data := &ReferenceData{}

	steps := []struct {
		file string
		read func(io.Reader) error
	}{
		{countriesFile, func(r io.Reader) (err error) { data.Countries, err = ReadCountries(r); return err }},
		{statesFile, func(r io.Reader) (err error) { data.States, err = ReadStates(r); return err }},
		{citiesFile, func(r io.Reader) (err error) { data.Cities, err = ReadCities(r); return err }},
		{timezonesFile, func(r io.Reader) (err error) { data.TimeZones, err = ReadTimeZones(r); return err }},
	}

	for _, step := range steps {
		if err := l.readFile(step.file, step.read); err != nil {
			return nil, err
		}
	}

	if err := data.Validate(); err != nil {
		return nil, err
	}

	return data, nil
}

func (l *CSVLoader) readFile(name string, read func(io.Reader) error) error {
	file, err := os.Open(filepath.Join(l.dataDir, name))
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	return errors.Wrapf(read(file), "read %s", name)
}

// Validate rejects orphaned states, cities and time zones.
func (d *ReferenceData) Validate() error {
	countries := make(map[int]struct{}, len(d.Countries))
	for _, c := range d.Countries {
		countries[c.ID] = struct{}{}
	}

	states := make(map[int]struct{}, len(d.States))
	for _, s := range d.States {
		if _, ok := countries[s.CountryID]; !ok {
			return errors.Errorf("state %d references unknown country %d", s.ID, s.CountryID)
		}
		states[s.ID] = struct{}{}
	}

	for _, c := range d.Cities {
		if _, ok := states[c.StateID]; !ok {
			return errors.Errorf("city %d references unknown state %d", c.ID, c.StateID)
		}
	}

	for _, tz := range d.TimeZones {
		if _, ok := countries[tz.CountryID]; !ok {
			return errors.Errorf("time zone %s references unknown country %d", tz.ZoneName, tz.CountryID)
		}
	}

	return nil
}

// ReadCountries parses id,name,iso rows.
func ReadCountries(r io.Reader) ([]model.CountryModel, error) {
	var out []model.CountryModel
	err := readRows(r, countriesHeader, func(record []string, line int) error {
		id, err := parseInt(record[0], "id", line)
		if err != nil {
			return err
		}
		iso := strings.ToUpper(strings.TrimSpace(record[2]))
		if iso == "" || len(iso) > 3 {
			return errors.Errorf("line %d: invalid iso %q", line, record[2])
		}
		out = append(out, model.CountryModel{ID: id, Name: strings.TrimSpace(record[1]), ISO: iso})

		return nil
	})

	return out, err
}

// ReadStates parses id,name,country_id rows.
func ReadStates(r io.Reader) ([]model.StateModel, error) {
	var out []model.StateModel
	err := readRows(r, statesHeader, func(record []string, line int) error {
		id, err := parseInt(record[0], "id", line)
		if err != nil {
			return err
		}
		countryID, err := parseInt(record[2], "country_id", line)
		if err != nil {
			return err
		}
		out = append(out, model.StateModel{ID: id, Name: strings.TrimSpace(record[1]), CountryID: countryID})

		return nil
	})

	return out, err
}

// ReadCities parses id,name,state_id,latitude,longitude rows.
func ReadCities(r io.Reader) ([]model.CityModel, error) {
	var out []model.CityModel
	err := readRows(r, citiesHeader, func(record []string, line int) error {
		id, err := parseInt(record[0], "id", line)
		if err != nil {
			return err
		}
		stateID, err := parseInt(record[2], "state_id", line)
		if err != nil {
			return err
		}
		lat, err := parseFloat(record[3], "latitude", line)
		if err != nil {
			return err
		}
		lng, err := parseFloat(record[4], "longitude", line)
		if err != nil {
			return err
		}
		if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			return errors.Errorf("line %d: coordinates out of range (%f, %f)", line, lat, lng)
		}
		out = append(out, model.CityModel{
			ID:        id,
			Name:      strings.TrimSpace(record[1]),
			StateID:   stateID,
			Latitude:  lat,
			Longitude: lng,
		})

		return nil
	})

	return out, err
}

// ReadTimeZones parses name,abbreviation,gmt_offset,gmt_offset_name,tz_name,zone_name,country_id rows.
func ReadTimeZones(r io.Reader) ([]model.TimeZoneModel, error) {
	var out []model.TimeZoneModel
	err := readRows(r, timezonesHeader, func(record []string, line int) error {
		offset, err := parseInt(record[2], "gmt_offset", line)
		if err != nil {
			return err
		}
		countryID, err := parseInt(record[6], "country_id", line)
		if err != nil {
			return err
		}
		out = append(out, model.TimeZoneModel{
			Name:          strings.TrimSpace(record[0]),
			Abbreviation:  strings.TrimSpace(record[1]),
			GMTOffset:     offset,
			GMTOffsetName: strings.TrimSpace(record[3]),
			TZName:        strings.TrimSpace(record[4]),
			ZoneName:      strings.TrimSpace(record[5]),
			CountryID:     countryID,
		})

		return nil
	})

	return out, err
}

// readRows checks the header then hands every record to parse with its 1-based line number.
func readRows(r io.Reader, header []string, parse func(record []string, line int) error) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(header)
	reader.TrimLeadingSpace = true

	got, err := reader.Read()
	if err != nil {
		return errors.Wrap(err, "read header")
	}
	for i, name := range header {
		if !strings.EqualFold(strings.TrimSpace(got[i]), name) {
			return errors.Errorf("unexpected header %v, want %v", got, header)
		}
	}

	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errors.WithStack(err)
		}
		line++

		if err := parse(record, line); err != nil {
			return err
		}
	}
}

func parseInt(raw, column string, line int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Errorf("line %d: invalid %s %q", line, column, raw)
	}

	return v, nil
}

func parseFloat(raw, column string, line int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errors.Errorf("line %d: invalid %s %q", line, column, raw)
	}

	return v, nil
}

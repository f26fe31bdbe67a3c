package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCountries = "id,name,iso\n1,Japan,jp\n2,France,FRA\n"
	testStates    = "id,name,country_id\n10,Tokyo,1\n20,Ile-de-France,2\n"
	testCities    = "id,name,state_id,latitude,longitude\n100,Shinjuku,10,35.6938,139.7034\n200,Paris,20,48.8566,2.3522\n"
	testTimeZones = "name,abbreviation,gmt_offset,gmt_offset_name,tz_name,zone_name,country_id\n" +
		"Japan Standard Time,JST,32400,UTC+09:00,Japan Standard Time,Asia/Tokyo,1\n" +
		"Central European Time,CET,3600,UTC+01:00,Central European Time,Europe/Paris,2\n"
)

func writeDataDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	return dir
}

func validFiles() map[string]string {
	return map[string]string{
		countriesFile: testCountries,
		statesFile:    testStates,
		citiesFile:    testCities,
		timezonesFile: testTimeZones,
	}
}

func TestCSVLoader_Load(t *testing.T) {
	data, err := NewCSVLoader(writeDataDir(t, validFiles())).Load()
	require.NoError(t, err)

	require.Len(t, data.Countries, 2)
	assert.Equal(t, "JP", data.Countries[0].ISO)
	assert.Equal(t, 2, data.States[1].CountryID)
	assert.InDelta(t, 48.8566, data.Cities[1].Latitude, 1e-9)
	assert.Equal(t, "Asia/Tokyo", data.TimeZones[0].ZoneName)
	assert.Equal(t, 32400, data.TimeZones[0].GMTOffset)
}

func TestCSVLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(files map[string]string)
		wantErr string
	}{
		{
			name:    "missing file",
			mutate:  func(files map[string]string) { delete(files, citiesFile) },
			wantErr: "cities.csv",
		},
		{
			name:    "wrong header",
			mutate:  func(files map[string]string) { files[statesFile] = "id,title,country_id\n" },
			wantErr: "unexpected header",
		},
		{
			name:    "bad number",
			mutate:  func(files map[string]string) { files[statesFile] = "id,name,country_id\nten,Tokyo,1\n" },
			wantErr: `line 2: invalid id "ten"`,
		},
		{
			name: "coordinates out of range",
			mutate: func(files map[string]string) {
				files[citiesFile] = "id,name,state_id,latitude,longitude\n100,Nowhere,10,95,0\n"
			},
			wantErr: "coordinates out of range",
		},
		{
			name:    "orphaned state",
			mutate:  func(files map[string]string) { files[statesFile] = "id,name,country_id\n10,Tokyo,9\n" },
			wantErr: "state 10 references unknown country 9",
		},
		{
			name: "orphaned time zone",
			mutate: func(files map[string]string) {
				files[timezonesFile] = "name,abbreviation,gmt_offset,gmt_offset_name,tz_name,zone_name,country_id\nX,X,0,UTC,X,Etc/X,7\n"
			},
			wantErr: "references unknown country 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := validFiles()
			tt.mutate(files)

			_, err := NewCSVLoader(writeDataDir(t, files)).Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadCountries_RejectsShortRows(t *testing.T) {
	_, err := ReadCountries(strings.NewReader("id,name,iso\n1,Japan\n"))

	assert.Error(t, err)
}

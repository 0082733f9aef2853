package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeDataset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	return path
}

func setupDriver(t *testing.T, path string) *File {
	t.Helper()
	driver := &File{config: &Config{Path: path}}
	if err := driver.config.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if err := driver.Setup(context.Background()); err != nil {
		t.Fatalf("Setup() failed: %v", err)
	}
	return driver
}

func TestFileLoadJSON(t *testing.T) {
	path := writeDataset(t, "worldcities.json", `[
  {"city": "Tokyo", "city_ascii": "Tokyo", "lat": 35.6897, "lng": 139.6922, "country": "Japan", "admin_name": "Tōkyō", "capital": "primary", "population": "37732000", "id": 1392685764},
  {"city": "Jakarta", "city_ascii": "Jakarta", "lat": -6.175, "lng": 106.8275, "country": "Indonesia", "id": 1360771077}
]`)

	driver := setupDriver(t, path)
	cities, err := driver.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(cities) != 2 {
		t.Fatalf("Expected 2 cities, got %d", len(cities))
	}
	if cities[0].Name != "Tokyo" || cities[0].ID != 1392685764 {
		t.Errorf("Unexpected first record: %+v", cities[0])
	}
	if string(cities[0].Population) != `"37732000"` {
		t.Errorf("Expected population to keep its raw form, got %s", cities[0].Population)
	}
	if cities[1].Population != nil {
		t.Errorf("Expected absent population to stay absent, got %s", cities[1].Population)
	}
}

func TestFileLoadJSONRejectsNonArray(t *testing.T) {
	path := writeDataset(t, "worldcities.json", `{"city": "Tokyo"}`)

	driver := setupDriver(t, path)
	if _, err := driver.Load(context.Background()); err == nil {
		t.Error("Expected error for a non-array payload but got none")
	}
}

func TestFileLoadCSV(t *testing.T) {
	path := writeDataset(t, "worldcities.csv", "city,city_ascii,lat,lng,country,admin_name,capital,population,id\n"+
		"Tokyo,Tokyo,35.6897,139.6922,Japan,Tōkyō,primary,37732000,1392685764\n"+
		"Ngerulmud,Ngerulmud,7.5006,134.6242,Palau,Melekeok,primary,,1585525826\n")

	driver := setupDriver(t, path)
	cities, err := driver.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(cities) != 2 {
		t.Fatalf("Expected 2 cities, got %d", len(cities))
	}
	if cities[0].Country != "Japan" || cities[0].Lat != 35.6897 {
		t.Errorf("Unexpected first record: %+v", cities[0])
	}
	if string(cities[0].Population) != `"37732000"` {
		t.Errorf("Expected population as a string cell, got %s", cities[0].Population)
	}
	// An empty cell under a present column is an empty string, not absent.
	if string(cities[1].Population) != `""` {
		t.Errorf("Expected empty cell to stay an empty string, got %s", cities[1].Population)
	}
}

func TestFileLoadCSVMissingColumnsStayAbsent(t *testing.T) {
	path := writeDataset(t, "worldcities.csv", "city,country,id\nVaduz,Liechtenstein,9\n")

	driver := setupDriver(t, path)
	cities, err := driver.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(cities) != 1 {
		t.Fatalf("Expected 1 city, got %d", len(cities))
	}
	city := cities[0]
	if city.AdminName != nil || city.Capital != nil || city.Population != nil {
		t.Errorf("Expected optional fields to stay absent, got %+v", city)
	}
	if city.Lat != 0 || city.Lng != 0 {
		t.Errorf("Expected missing coordinates to degrade to zero, got %+v", city)
	}
}

func TestFileFormatInference(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		format   Format
		expected Format
	}{
		{name: "csv extension", fileName: "worldcities.csv", expected: FormatCSV},
		{name: "json extension", fileName: "worldcities.json", expected: FormatJSON},
		{name: "unknown extension falls back to json", fileName: "worldcities.txt", expected: FormatJSON},
		{name: "explicit format wins over extension", fileName: "worldcities.csv", format: FormatJSON, expected: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDataset(t, tt.fileName, "[]")
			driver := &File{config: &Config{Path: path, Format: tt.format}}
			if err := driver.Setup(context.Background()); err != nil {
				t.Fatalf("Setup() failed: %v", err)
			}
			if driver.format != tt.expected {
				t.Errorf("Expected format %s, got %s", tt.expected, driver.format)
			}
		})
	}
}

func TestFileSetupMissingFile(t *testing.T) {
	driver := &File{config: &Config{Path: filepath.Join(t.TempDir(), "missing.json")}}
	if err := driver.Setup(context.Background()); err == nil {
		t.Error("Expected error for a missing file but got none")
	}
}

func TestFileConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		expectErr bool
	}{
		{name: "path set", config: &Config{Path: "worldcities.json"}, expectErr: false},
		{name: "path missing", config: &Config{}, expectErr: true},
		{name: "known format", config: &Config{Path: "cities.dat", Format: FormatCSV}, expectErr: false},
		{name: "unknown format", config: &Config{Path: "cities.dat", Format: "xml"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectErr && err == nil {
				t.Errorf("Expected error but got none")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

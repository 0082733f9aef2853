package json

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gridbase-inc/citysift/constants"
	"github.com/gridbase-inc/citysift/types"
)

func checkedWriter(t *testing.T, dir string) *JSON {
	t.Helper()
	writer := &JSON{config: &Config{Path: dir}}
	if err := writer.Check(context.Background()); err != nil {
		t.Fatalf("Check() failed: %v", err)
	}
	return writer
}

func TestJSONWriteKeepsUpstreamFormatting(t *testing.T) {
	dir := t.TempDir()
	writer := checkedWriter(t, dir)

	cities := []types.FilteredCity{
		{
			Name:       "Tōkyō & Yokohama",
			NameASCII:  "Tokyo",
			Lat:        35.6897,
			Lng:        139.6922,
			Country:    "Japan",
			AdminName:  json.RawMessage(`"Tōkyō"`),
			Population: json.RawMessage(`"37732000"`),
			ID:         1392685764,
		},
	}

	if err := writer.Write(context.Background(), cities); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, constants.OutputFileName))
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	// Two space indent, non-ascii and html characters unescaped, key order
	// matching the upstream dataset.
	expected := `[
  {
    "city": "Tōkyō & Yokohama",
    "city_ascii": "Tokyo",
    "lat": 35.6897,
    "lng": 139.6922,
    "country": "Japan",
    "admin_name": "Tōkyō",
    "population": "37732000",
    "id": 1392685764,
    "isCityCountry": false
  }
]
`
	if string(data) != expected {
		t.Errorf("Unexpected output:\n%s", data)
	}
}

func TestJSONWriteEmptyDataset(t *testing.T) {
	dir := t.TempDir()
	writer := checkedWriter(t, dir)

	if err := writer.Write(context.Background(), []types.FilteredCity{}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, constants.OutputFileName))
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "[]\n" {
		t.Errorf("Expected an empty array, got: %s", data)
	}
}

func TestJSONCheckCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")

	writer := &JSON{config: &Config{Path: dir}}
	if err := writer.Check(context.Background()); err != nil {
		t.Fatalf("Check() failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("Expected %s to be created as a directory", dir)
	}
}

func TestJSONCheckRejectsEmptyPath(t *testing.T) {
	writer := &JSON{config: &Config{}}
	if err := writer.Check(context.Background()); err == nil {
		t.Error("Expected error for an empty path but got none")
	}
}

package utils

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/oklog/ulid"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// Ternary resolves to a if cond holds, else b. Caller asserts the type.
func Ternary(cond bool, a, b any) any {
	if cond {
		return a
	}
	return b
}

// ArrayContains reports the index of the first element matched by check.
func ArrayContains[T any](set []T, check func(elem T) bool) (int, bool) {
	for idx, elem := range set {
		if check(elem) {
			return idx, true
		}
	}
	return -1, false
}

func IsValidSubcommand(available []*cobra.Command, cmd string) bool {
	_, found := ArrayContains(available, func(elem *cobra.Command) bool {
		return elem.Use == cmd
	})
	return found
}

// Unmarshal serializes and deserializes any from into any object.
// Used to remap loosely typed config payloads onto concrete structs.
func Unmarshal(data, dest any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %s", err)
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return fmt.Errorf("failed to deserialize config: %s", err)
	}
	return nil
}

// UnmarshalFile reads path into dest. YAML files are converted through
// sigs.k8s.io/yaml so json tags keep working; everything else is JSON.
func UnmarshalFile(path string, dest any) error {
	data, err := os.ReadFile(ExpandHomeDir(path))
	if err != nil {
		return fmt.Errorf("failed to read file %s: %s", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, dest)
	default:
		err = json.Unmarshal(data, dest)
	}
	if err != nil {
		return fmt.Errorf("failed to unmarshal file %s: %s", path, err)
	}
	return nil
}

// TimestampedFileName produces a collision-free file name for the given
// extension, ordered by creation time.
func TimestampedFileName(extension string) string {
	now := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0)
	return fmt.Sprintf("%d-%s.%s", now.Unix(), ulid.MustNew(ulid.Timestamp(now), entropy).String(), extension)
}

// ExpandHomeDir resolves a leading ~ against the current user's home.
func ExpandHomeDir(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

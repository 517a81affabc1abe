package migrations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		version int
		ok      bool
	}{
		{"V1__init.sql", 1, true},
		{"V12__add_settings.sql", 12, true},
		{"V2__two__underscores.sql", 2, true},
		{"init.sql", 0, false},
		{"V__missing_number.sql", 0, false},
		{"Vx__not_a_number.sql", 0, false},
		{"V3_single_underscore.sql", 0, false},
	}
	for _, tt := range tests {
		version, ok := parseVersion(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.version, version, tt.name)
	}
}

func TestListMigrationsOrder(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"V10__ten.sql",
		"V2__two.sql",
		"V1__one.sql",
		"notes.txt",
		"zzz_unversioned.sql",
	}
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1"), 0o644))
	}

	migs, err := listMigrations(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(migs))
	for _, mig := range migs {
		names = append(names, mig.Name)
	}
	// Versioned files numerically first, then the rest by name.
	assert.Equal(t, []string{"V1__one.sql", "V2__two.sql", "V10__ten.sql", "zzz_unversioned.sql"}, names)
}

func TestListMigrationsMissingDir(t *testing.T) {
	_, err := listMigrations(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

package database

import (
	"io/fs"
	"strings"
	"testing"
)

func TestMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Fatalf("unexpected file %s", name)
		}
	}
	if len(ups) == 0 {
		t.Fatalf("expected migrations")
	}
	for v := range ups {
		if !downs[v] {
			t.Fatalf("migration %s has no down file", v)
		}
	}
}

func TestEstimatesSchema(t *testing.T) {
	b, err := fs.ReadFile(migrationsFS, "migrations/000002_estimates.up.sql")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	schema := string(b)
	for _, want := range []string{
		"estimate_number VARCHAR(20) NOT NULL UNIQUE",
		"email          VARCHAR(254) NOT NULL UNIQUE",
		"REFERENCES package_templates (id) ON DELETE SET NULL",
		"quantity_snapshot",
	} {
		if !strings.Contains(schema, want) {
			t.Fatalf("schema is missing %q", want)
		}
	}
}

package postgres

import (
	"io/fs"
	"strings"
	"testing"
)

// Deleting a category must detach its records, not cascade into them.
// The schema enforces this with ON DELETE SET NULL on the foreign key,
// so every migration that references categories has to keep that action.
func TestMigrations_CategoryDeleteDetachesRecords(t *testing.T) {
	entries, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		t.Fatalf("glob embedded migrations: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no embedded migrations found")
	}

	var declared bool
	for _, name := range entries {
		raw, err := migrations.ReadFile(name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		for _, line := range strings.Split(string(raw), "\n") {
			if !strings.Contains(line, "REFERENCES categories") {
				continue
			}
			if !strings.Contains(line, "ON DELETE SET NULL") {
				t.Errorf("%s: category reference without ON DELETE SET NULL: %s", name, strings.TrimSpace(line))
				continue
			}
			declared = true
		}
	}
	if !declared {
		t.Error("no migration declares ON DELETE SET NULL on the categories foreign key")
	}
}

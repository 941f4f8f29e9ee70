package gormrepo

import (
	"testing"
	"testing/fstest"

	"islandgen/migrations"
)

func TestMigrationFiles_SortedSQLOnly(t *testing.T) {
	fsys := fstest.MapFS{
		"0002_more.sql":  {Data: []byte("SELECT 1;")},
		"0001_init.sql":  {Data: []byte("SELECT 1;")},
		"README.md":      {Data: []byte("notes")},
		"nested/x.sql":   {Data: []byte("SELECT 1;")},
		"0003_last.sql~": {Data: []byte("backup")},
	}
	got, err := migrationFiles(fsys)
	if err != nil {
		t.Fatalf("migration files: %v", err)
	}
	want := []string{"0001_init.sql", "0002_more.sql"}
	if len(got) != len(want) {
		t.Fatalf("files got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("files got=%v want=%v", got, want)
		}
	}
}

func TestMigrationFiles_EmbeddedSchema(t *testing.T) {
	got, err := migrationFiles(migrations.FS)
	if err != nil {
		t.Fatalf("migration files: %v", err)
	}
	if len(got) == 0 || got[0] != "0001_init.sql" {
		t.Fatalf("embedded migrations got=%v", got)
	}
}

package gormrepo

import (
	"context"
	"errors"
	"os"
	"testing"

	"islandgen/internal/app/ports"
	"islandgen/internal/domain/world"
	"islandgen/migrations"

	"gorm.io/gorm"
)

var (
	_ ports.KeyObjectRepository     = KeyObjectRepo{}
	_ ports.ChunkSnapshotRepository = WorldChunkRepo{}
	_ ports.TxManager               = TxManager{}
)

func requireDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("ISLANDGEN_DB_DSN")
	if dsn == "" {
		t.Skip("ISLANDGEN_DB_DSN is required for integration test")
	}
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if err := ApplyMigrations(context.Background(), db, migrations.FS); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	db := requireDB(t)
	if err := ApplyMigrations(context.Background(), db, migrations.FS); err != nil {
		t.Fatalf("second apply: %v", err)
	}
	var count int64
	if err := db.Table("schema_migrations").Where("version = ?", "0001_init").Count(&count).Error; err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one recorded migration, got %d", count)
	}
}

func TestKeyObjectRepo_ReplaceListComplete(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	const seed = int64(-9001)
	_ = db.Exec("DELETE FROM key_objects WHERE world_seed = ?", seed).Error

	repo := NewKeyObjectRepo(db)
	if err := repo.ReplaceAll(ctx, seed, []world.KeyObjectRecord{
		{Position: world.Point{X: 40, Y: 50}, Biome: "forest"},
		{Position: world.Point{X: 300, Y: 120}, Biome: "desert"},
	}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := repo.MarkCompleted(ctx, seed, "desert"); err != nil {
		t.Fatalf("mark completed: %v", err)
	}
	if err := repo.MarkCompleted(ctx, seed, "tundra"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	got, err := repo.ListBySeed(ctx, seed)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Biome != "forest" || got[0].Position != (world.Point{X: 40, Y: 50}) || got[0].Completed {
		t.Fatalf("unexpected first record: %+v", got[0])
	}
	if !got[1].Completed {
		t.Fatalf("expected desert completed: %+v", got[1])
	}

	if err := repo.ReplaceAll(ctx, seed, []world.KeyObjectRecord{{Biome: "forest"}}); err != nil {
		t.Fatalf("second replace: %v", err)
	}
	if got, _ := repo.ListBySeed(ctx, seed); len(got) != 1 {
		t.Fatalf("replace must drop old records, got %+v", got)
	}
}

func TestWorldChunkRepo_UpsertRoundTrip(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	const seed = int64(-9002)
	_ = db.Exec("DELETE FROM world_chunks WHERE world_seed = ?", seed).Error

	repo := NewWorldChunkRepo(db)
	origin := world.ChunkCoord{X: 0, Y: 32}
	if _, ok, err := repo.GetChunk(ctx, seed, origin); ok || err != nil {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	snap := world.ChunkSnapshot{
		Origin: origin,
		Tiles: []world.TileSnapshot{
			{X: 0, Y: 32, Biome: "beach", Edge: world.EdgeLeft},
			{X: 1, Y: 32, Biome: "forest", Tree: true},
		},
	}
	if err := repo.SaveChunk(ctx, seed, snap); err != nil {
		t.Fatalf("save chunk: %v", err)
	}
	keyPos := world.Point{X: 5, Y: 40}
	snap.ContainsKeyObject = true
	snap.KeyObjectPos = &keyPos
	if err := repo.SaveChunk(ctx, seed, snap); err != nil {
		t.Fatalf("upsert chunk: %v", err)
	}

	got, ok, err := repo.GetChunk(ctx, seed, origin)
	if err != nil || !ok {
		t.Fatalf("get chunk: ok=%v err=%v", ok, err)
	}
	if got.Origin != origin || len(got.Tiles) != 2 || !got.Tiles[1].Tree || got.Tiles[0].Edge != world.EdgeLeft {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
	if !got.ContainsKeyObject || got.KeyObjectPos == nil || *got.KeyObjectPos != keyPos {
		t.Fatalf("upsert lost key object: %+v", got)
	}
}

func TestTxManager_RunInTxCommitAndRollback(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	const seed = int64(-9003)
	_ = db.Exec("DELETE FROM key_objects WHERE world_seed IN (?, ?)", seed, seed-1).Error

	txManager := NewTxManager(db)
	repo := NewKeyObjectRepo(db)

	commitErr := txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return repo.ReplaceAll(txCtx, seed, []world.KeyObjectRecord{{Biome: "forest"}})
	})
	if commitErr != nil {
		t.Fatalf("commit tx failed: %v", commitErr)
	}
	if got, err := repo.ListBySeed(ctx, seed); err != nil || len(got) != 1 {
		t.Fatalf("expected committed record, got %+v err=%v", got, err)
	}

	rollbackErr := txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := repo.ReplaceAll(txCtx, seed-1, []world.KeyObjectRecord{{Biome: "forest"}}); err != nil {
			return err
		}
		return errors.New("force rollback")
	})
	if rollbackErr == nil {
		t.Fatalf("expected rollback error")
	}
	if got, err := repo.ListBySeed(ctx, seed-1); err != nil || len(got) != 0 {
		t.Fatalf("expected rollback to remove records, got %+v err=%v", got, err)
	}
}

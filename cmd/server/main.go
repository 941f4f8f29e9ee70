package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "islandgen/internal/adapter/http"
	metricsinmem "islandgen/internal/adapter/metrics/inmemory"
	gormrepo "islandgen/internal/adapter/repo/gorm"
	memoryrepo "islandgen/internal/adapter/repo/memory"
	worldruntime "islandgen/internal/adapter/world/runtime"
	"islandgen/internal/app/generate"
	"islandgen/internal/app/keyobject"
	"islandgen/internal/app/ports"
	"islandgen/internal/app/query"
	"islandgen/internal/app/stream"
	"islandgen/internal/config"
	"islandgen/migrations"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func main() {
	configPath := flag.String("config", os.Getenv("ISLANDGEN_CONFIG"), "path to a YAML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		hlog.Fatalf("load config: %v", err)
	}
	hlog.SetLevel(cfg.Server.HlogLevel())

	// Cancels a long generation on ctrl-c. Once serving, Spin handles signals.
	ctx, cancel := signalContext()
	defer cancel()

	repos, err := buildRepos(ctx, cfg)
	if err != nil {
		hlog.Fatalf("build repositories: %v", err)
	}
	biomes, err := cfg.BiomeSet()
	if err != nil {
		hlog.Fatalf("biomes: %v", err)
	}

	worldProvider := worldruntime.NewProvider()
	kpiRecorder := metricsinmem.NewRecorder()

	gen := generate.UseCase{
		Biomes:     biomes,
		KeyObjects: repos.keyObjects,
		Chunks:     repos.chunks,
		TxManager:  repos.txManager,
		World:      worldProvider,
		Metrics:    kpiRecorder,
		Now:        time.Now,
	}
	if _, err := gen.Execute(ctx, generate.Request{Params: cfg.Params()}); err != nil {
		hlog.Fatalf("generate world: %v", err)
	}

	h := httpadapter.Handler{
		QueryUC:     &query.UseCase{World: worldProvider, Metrics: kpiRecorder},
		StreamUC:    stream.UseCase{World: worldProvider, Metrics: kpiRecorder, UnloadMargin: cfg.World.UnloadMargin},
		KeyObjectUC: keyobject.UseCase{Repo: repos.keyObjects, TxManager: repos.txManager, World: worldProvider},
		KPI:         kpiRecorder,

		AllowOrigins: cfg.Server.AllowOrigins,
	}

	s := server.Default(server.WithHostPorts(cfg.Server.Addr))
	h.RegisterRoutes(s)

	hlog.Infof("islandgen server listening on %s", cfg.Server.Addr)
	s.Spin()
}

// loadConfig falls back to the built-in defaults when no file is given.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg := config.Default()
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

type repoSet struct {
	keyObjects ports.KeyObjectRepository
	chunks     ports.ChunkSnapshotRepository
	txManager  ports.TxManager
}

// buildRepos uses postgres when a DSN is configured and an in-memory store
// otherwise. Chunk snapshots are only exported to postgres.
func buildRepos(ctx context.Context, cfg config.Config) (repoSet, error) {
	if cfg.Database.DSN == "" {
		store := memoryrepo.NewStore()
		hlog.Warnf("no database configured, key objects are kept in memory")
		return repoSet{
			keyObjects: memoryrepo.NewKeyObjectRepo(store),
			txManager:  memoryrepo.NewTxManager(store),
		}, nil
	}

	slow, err := cfg.Database.SlowQuery()
	if err != nil {
		return repoSet{}, err
	}
	db, err := gormrepo.OpenPostgres(cfg.Database.DSN, gormrepo.Options{
		MaxOpenConns:  cfg.Database.MaxOpenConns,
		MaxIdleConns:  cfg.Database.MaxOpenConns,
		SlowThreshold: slow,
	})
	if err != nil {
		return repoSet{}, err
	}
	if cfg.Database.Migrate {
		if err := gormrepo.ApplyMigrations(ctx, db, migrations.FS); err != nil {
			return repoSet{}, fmt.Errorf("apply migrations: %w", err)
		}
	}
	out := repoSet{
		keyObjects: gormrepo.NewKeyObjectRepo(db),
		txManager:  gormrepo.NewTxManager(db),
	}
	if cfg.Database.ExportChunks {
		out.chunks = gormrepo.NewWorldChunkRepo(db)
	}
	return out, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

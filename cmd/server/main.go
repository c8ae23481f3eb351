package main

import (
	"context"
	"io/fs"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"ecosim/db"
	httpadapter "ecosim/internal/adapter/http"
	metricsinmem "ecosim/internal/adapter/metrics/inmemory"
	gormrepo "ecosim/internal/adapter/repo/gorm"
	"ecosim/internal/adapter/repo/memory"
	"ecosim/internal/adapter/scenario"
	"ecosim/internal/adapter/stream"
	"ecosim/internal/app/observe"
	"ecosim/internal/app/ports"
	"ecosim/internal/app/replay"
	"ecosim/internal/app/scenarios"
	"ecosim/internal/app/simulation"
	"ecosim/internal/app/status"
	"ecosim/internal/domain/world"
)

func main() {
	ctx := context.Background()
	turnLog, txManager := mustBuildTurnLog(ctx)
	worlds := memory.NewWorldRegistry()
	library := scenario.Library{Root: resolveScenarioRoot()}
	kpiRecorder := metricsinmem.NewRecorder()
	observeUC := observe.UseCase{Worlds: worlds}

	var publisher ports.SnapshotPublisher = ports.NopPublisher{}
	var closer simulation.WorldCloser
	if addr := stringEnv("ECOSIM_STREAM_ADDR", ""); addr != "" {
		hub := stream.NewHub(observeUC.Snapshot)
		publisher, closer = hub, hub
		go serveStream(addr, hub)
	}

	createUC := simulation.CreateUseCase{
		Worlds:    worlds,
		TurnLog:   turnLog,
		TxManager: txManager,
		Scenarios: library,
		Now:       time.Now,
	}
	turnUC := simulation.TurnUseCase{
		Worlds:    worlds,
		TurnLog:   turnLog,
		TxManager: txManager,
		Publisher: publisher,
		Metrics:   kpiRecorder,
		Now:       time.Now,
	}

	h := httpadapter.Handler{
		CreateUC:    createUC,
		TurnUC:      turnUC,
		DeleteUC:    simulation.DeleteUseCase{Worlds: worlds, TurnLog: turnLog, TxManager: txManager, Closer: closer},
		ListUC:      simulation.ListUseCase{Worlds: worlds},
		ObserveUC:   observeUC,
		StatusUC:    status.UseCase{Worlds: worlds},
		ReplayUC:    replay.UseCase{TurnLog: turnLog},
		ScenariosUC: scenarios.UseCase{Library: library},
		KPI:         kpiRecorder,

		AllowOrigins: stringEnv("ECOSIM_CORS_ORIGINS", ""),
	}

	startup := mustCreateStartupWorld(ctx, createUC)
	if tick := intEnv("ECOSIM_TICK_MS", 0); tick > 0 {
		auto := &simulation.Autoplay{
			Turns:   turnUC,
			Clock:   world.NewClock(world.ClockConfig{StartAt: time.Now(), TurnInterval: time.Duration(tick) * time.Millisecond}),
			WorldID: startup.WorldID,
			Now:     time.Now,
		}
		go func() { _ = auto.Run(ctx) }()
		hlog.Infof("autoplay: world %s advances every %dms", startup.WorldID, tick)
	}

	addr := stringEnv("ECOSIM_HTTP_ADDR", ":8080")
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	hlog.Infof("ecosim server listening on %s (startup world: %s %q)", addr, startup.WorldID, startup.Name)
	s.Spin()
}

// mustBuildTurnLog keeps the turn log in memory unless ECOSIM_DB_DSN points
// at Postgres.
func mustBuildTurnLog(ctx context.Context) (ports.TurnLogRepository, ports.TxManager) {
	dsn := stringEnv("ECOSIM_DB_DSN", "")
	if dsn == "" {
		store := memory.NewStore()
		return memory.NewTurnLogRepo(store), memory.NewTxManager(store)
	}
	gdb, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		hlog.Fatalf("open postgres: %v", err)
	}
	fsys, dir := migrationSource()
	applied, err := gormrepo.ApplyMigrations(ctx, gdb, fsys, dir)
	if err != nil {
		hlog.Fatalf("apply migrations: %v", err)
	}
	hlog.Infof("applied %d migration(s): %s", len(applied), strings.Join(applied, ", "))
	return gormrepo.NewTurnLogRepo(gdb), gormrepo.NewTxManager(gdb)
}

func migrationSource() (fs.FS, string) {
	if dir := stringEnv("ECOSIM_MIGRATIONS_DIR", ""); dir != "" {
		return os.DirFS(dir), "."
	}
	return db.Migrations, db.MigrationsDir
}

func mustCreateStartupWorld(ctx context.Context, uc simulation.CreateUseCase) simulation.CreateResponse {
	req := simulation.CreateRequest{ScenarioName: stringEnv("ECOSIM_SCENARIO", scenario.DefaultName)}
	if seed, ok := uint64Env("ECOSIM_SEED"); ok {
		req.Seed = &seed
	}
	out, err := uc.Execute(ctx, req)
	if err != nil {
		hlog.Fatalf("create startup world: %v", err)
	}
	return out
}

func serveStream(addr string, hub *stream.Hub) {
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	hlog.Infof("snapshot stream listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		hlog.Errorf("snapshot stream stopped: %v", err)
	}
}

func resolveScenarioRoot() string {
	if root := stringEnv("ECOSIM_SCENARIO_DIR", ""); root != "" {
		return root
	}
	if info, err := os.Stat("./scenarios"); err == nil && info.IsDir() {
		return "./scenarios"
	}
	return ""
}

func stringEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func uint64Env(key string) (uint64, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

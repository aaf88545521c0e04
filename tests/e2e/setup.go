//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"court-booking/cmd/bootstrap"
	"court-booking/cmd/bootstrap/components"
	"court-booking/internal/infra/db"
	"court-booking/internal/pkg/config"
	"court-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"

	postgresImage = "postgres:17"
	redisImage    = "redis:7-alpine"
)

// containers are shared by every suite in the test binary
var (
	containersOnce sync.Once
	containersErr  error
	shared         containers
)

type endpoint struct {
	Host string
	Port nat.Port
}

func (e endpoint) addr() string {
	return e.Host + ":" + e.Port.Port()
}

type containers struct {
	postgres testcontainers.Container
	redis    testcontainers.Container

	pg endpoint
	rd endpoint
}

func startContainers(t *testing.T) containers {
	t.Helper()
	gin.SetMode(gin.TestMode)

	containersOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		shared.postgres, containersErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        postgresImage,
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				// durability is irrelevant for throwaway databases
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
					return adminDSN(endpoint{Host: host, Port: port})
				}).WithStartupTimeout(60 * time.Second),
				Labels: map[string]string{"purpose": "court-booking-e2e"},
			},
			Started: true,
		})
		if containersErr != nil {
			return
		}

		shared.redis, containersErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        redisImage,
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
				Labels:       map[string]string{"purpose": "court-booking-e2e"},
			},
			Started: true,
		})
		if containersErr != nil {
			return
		}

		if shared.pg, containersErr = mappedEndpoint(ctx, shared.postgres, "5432/tcp"); containersErr != nil {
			return
		}
		shared.rd, containersErr = mappedEndpoint(ctx, shared.redis, "6379/tcp")
	})
	require.NoError(t, containersErr, "コンテナの起動に失敗")
	return shared
}

func mappedEndpoint(ctx context.Context, c testcontainers.Container, port string) (endpoint, error) {
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return endpoint{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return endpoint{}, err
	}
	return endpoint{Host: host, Port: mapped}, nil
}

func adminDSN(pg endpoint) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, pg.addr())
}

// createDatabase creates a database private to the calling suite and applies
// every migration to it.
func createDatabase(t *testing.T, pg endpoint) config.DBConfig {
	t.Helper()
	name := "booking_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(pg))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// the container may still be finishing its init scripts
	for attempt := range 5 {
		if _, err = admin.Exec(ctx, "CREATE DATABASE "+name); err == nil {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", err.Error())
		time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(pg))
		if err != nil {
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", name, "error", err.Error())
		}
	})

	cfg := config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
		MaxConns: 30,
	}
	require.NoError(t, migrate(ctx, cfg), "データベースマイグレーションに失敗")
	return cfg
}

func migrate(ctx context.Context, cfg config.DBConfig) error {
	dir, err := findMigrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	pool, closePool, err := db.Connect(cfg)
	if err != nil {
		return err
	}
	defer closePool()

	for _, file := range files {
		sql, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file, err)
		}
	}
	return nil
}

// go test runs with the package directory as working directory
func findMigrationsDir() (string, error) {
	dir := "migrations"
	for range 4 {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
		dir = filepath.Join("..", dir)
	}
	return "", fmt.Errorf("migrations directory not found")
}

// Instance is one running copy of the service wired against the suite's
// database and Redis.
type Instance struct {
	Router *gin.Engine
	Config config.Config
	app    *fx.App
}

func startInstance(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *Instance {
	t.Helper()
	inst := &Instance{}

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.RedisModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.SearchModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&inst.Router, &inst.Config),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")
	inst.app = app

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return inst
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	env := startContainers(t)

	cfg := config.NewTestConfig()
	cfg.DB = createDatabase(t, env.pg)
	cfg.Redis.Addr = env.rd.addr()
	// each suite gets its own channel so parallel packages never see each other's events
	cfg.Redis.CatalogChannel = "catalog-events-" + cfg.DB.DBName

	pool, closePool, err := db.Connect(cfg.DB)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(closePool)
	require.NoError(t, dbtest.SeedReferenceData(pool), "参照データの投入に失敗")

	inst := startInstance(t, pool, cfg)
	s.DB = pool
	s.Router = inst.Router
	s.Config = inst.Config
}

// StartPeer runs a second instance against the same database and Redis
// channel, the way a horizontally scaled deployment would.
func (s *SharedSuite) StartPeer() *Instance {
	return startInstance(s.T(), s.DB, s.Config)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
}

package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"gtm-crm-backend/internal/config"
	"gtm-crm-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "crm"
	pgPassword = "crm-test"
	pgDatabase = "crm_test"
	pgImage    = "postgres"
	pgTag      = "15-alpine"
)

// crmTables are truncated between tests, children before parents
var crmTables = []string{"lists", "deals", "leads", "contacts", "companies", "users", "workspaces"}

// pgContainer is the Postgres instance shared by every integration suite in the process
type pgContainer struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	cfg      *config.Config
}

var (
	shared     *pgContainer
	sharedErr  error
	sharedOnce sync.Once
	sharedMu   sync.Mutex
)

// BaseTestSuite gives a suite a migrated database that is emptied around every test
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared container on first use and returns a suite bound to it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	t.Helper()
	sharedOnce.Do(func() {
		shared, sharedErr = startPostgres()
	})
	if sharedErr != nil {
		t.Fatalf("postgres test container: %v", sharedErr)
	}
	return &BaseTestSuite{DB: shared.db, Config: shared.cfg}
}

// CleanupSharedContainer closes the pool and purges the container. TestMain calls it once.
func CleanupSharedContainer() {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		return
	}
	if sqlDB, err := shared.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := shared.pool.Purge(shared.resource); err != nil {
		log.Printf("WARN: purge postgres container: %v", err)
	}
	shared = nil
}

func (s *BaseTestSuite) SetupTest()         { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest()      { s.CleanTestDB() }
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every CRM table in one statement
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	quoted := make([]string, len(crmTables))
	for i, table := range crmTables {
		quoted[i] = `"` + table + `"`
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		log.Printf("WARN: truncate test tables: %v", err)
	}
}

func startPostgres() (*pgContainer, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: pgImage,
		Tag:        pgTag,
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("run postgres: %w", err)
	}
	// reaps the container if the process dies before TestMain cleans up
	_ = resource.Expire(600)

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	if err := pool.Retry(func() error { return ping(dsn) }); err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("migrate test database: %w", err)
	}

	log.Printf("Postgres test container %s ready", resource.Container.Name)
	return &pgContainer{
		pool:     pool,
		resource: resource,
		db:       db,
		cfg: &config.Config{
			DatabaseURL:          dsn,
			Environment:          "test",
			LogLevel:             "debug",
			PersistenceTimeoutMS: 5000,
			JWTSecret:            "test-secret",
			JWTTTLMinutes:        60,
			NotifyStream:         "gtm:test",
		},
	}, nil
}

// ping opens a plain database/sql connection so readiness is checked without running migrations
func ping(dsn string) error {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return conn.PingContext(ctx)
}

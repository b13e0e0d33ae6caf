package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	root "bincatalog"
	"bincatalog/pkg/domain"
	"bincatalog/pkg/storage/postgres"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "bincatalog"
)

var now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

// runMigrations applies the embedded catalog schema.
func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 1,
		ApplicationName:    "bincatalog-test",
	})
	require.NoError(t, err)

	require.NoError(t, runMigrations(pgSQL.DB.(*sql.DB)))

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

func intPtr(v int) *int { return &v }

// seedBin stores an active BIN without extension.
func seedBin(t *testing.T, pg *postgres.PgSQL, code string) domain.Bin {
	t.Helper()

	b, err := domain.NewBin(code, domain.BinAttrs{
		Name:            "Test Bin",
		TypeBin:         "CREDITO",
		TypeAccount:     "01",
		CompensationCod: "CMP",
		UsesBinExt:      "N",
	}, now, domain.SomeActor("seed"))
	require.NoError(t, err)

	stored, err := pg.SaveBin(context.Background(), b)
	require.NoError(t, err)

	return *stored
}

// seedSubtype stores a subtype under bin.
func seedSubtype(t *testing.T, pg *postgres.PgSQL, code, bin, ext string, active bool) domain.Subtype {
	t.Helper()

	s, err := domain.NewSubtype(code, bin, domain.SubtypeAttrs{Name: "Sub " + code, BinExt: ext}, now, domain.NoActor())
	require.NoError(t, err)
	if active {
		s, err = s.ChangeStatus("A", now, domain.NoActor())
		require.NoError(t, err)
	}

	stored, err := pg.SaveSubtype(context.Background(), s)
	require.NoError(t, err)

	return *stored
}

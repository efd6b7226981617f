package containers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const startupTimeout = 2 * time.Minute

// StartPostgres starts a Postgres container for the duration of the test and
// returns its connection URL. The test is skipped if Docker is not available.
func StartPostgres(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping Postgres container in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "pg-test-user",
			"POSTGRES_PASSWORD": "pg-test-password",
			"POSTGRES_DB":       "pg-test-db",
		},
		// The server restarts once after the init scripts ran.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(startupTimeout),
	}

	endpoint := start(t, req, "5432/tcp")

	return fmt.Sprintf("postgres://pg-test-user:pg-test-password@%s/pg-test-db?sslmode=disable", endpoint)
}

// StartRedis starts a Redis container for the duration of the test and
// returns its connection URL. The test is skipped if Docker is not available.
func StartRedis(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping Redis container in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	req := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(startupTimeout),
	}

	endpoint := start(t, req, "6379/tcp")

	return "redis://" + endpoint
}

func start(t *testing.T, req testcontainers.ContainerRequest, port nat.Port) string {
	t.Helper()

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("could not start %s container: %v", req.Image, err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate %s container: %v", req.Image, err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	mapped, err := container.MappedPort(ctx, port)
	require.NoError(t, err)

	return host + ":" + mapped.Port()
}

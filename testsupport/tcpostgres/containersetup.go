package tcpostgres

import (
	"context"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const defaultImage = "postgres:17-alpine"

// PostgresContainer is a running postgres test container
type PostgresContainer struct {
	testcontainers.Container
}

type ContainerOption func(req *testcontainers.GenericContainerRequest)

func WithImage(image string) ContainerOption {
	return func(req *testcontainers.GenericContainerRequest) {
		req.Image = image
	}
}

func WithWaitStrategy(strategies ...wait.Strategy) ContainerOption {
	return func(req *testcontainers.GenericContainerRequest) {
		req.WaitingFor = wait.ForAll(strategies...).WithDeadline(time.Minute)
	}
}

func WithPort(port string) ContainerOption {
	return func(req *testcontainers.GenericContainerRequest) {
		req.ExposedPorts = append(req.ExposedPorts, port)
	}
}

// WithName names the container. Named containers are reused across test
// packages.
func WithName(containerName string) ContainerOption {
	return func(req *testcontainers.GenericContainerRequest) {
		req.Name = containerName
		req.Reuse = containerName != ""
	}
}

func WithInitialDatabase(user, password, dbName string) ContainerOption {
	return func(req *testcontainers.GenericContainerRequest) {
		req.Env["POSTGRES_USER"] = user
		req.Env["POSTGRES_PASSWORD"] = password
		req.Env["POSTGRES_DB"] = dbName
	}
}

// SetupPostgres starts a postgres container tuned for tests.
func SetupPostgres(ctx context.Context, opts ...ContainerOption) (
	*PostgresContainer, error,
) {
	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: defaultImage,
			Env:   map[string]string{},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "synchronous_commit=off",
				"-c", "full_page_writes=off",
			},
		},
		Started: true,
	}
	for _, opt := range opts {
		opt(&req)
	}

	container, err := testcontainers.GenericContainer(ctx, req)
	if err != nil {
		return nil, err
	}
	return &PostgresContainer{Container: container}, nil
}

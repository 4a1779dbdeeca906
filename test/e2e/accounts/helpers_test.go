//go:build e2e

package accounts_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/passport/pkg/accountsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testImageName = "passport-test:latest"
	jwtSecret     = "e2e-secret-0123456789abcdef0123456789"
	testPassword  = "secret1"
)

// TestMain builds the service image once for the whole package.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building passport Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up passport Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/accounts/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

func cleanupDockerImage() {
	_ = exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName).Run()
}

// baseEnv is the service environment shared by every container. Rate limits
// are relaxed so tests can make rapid calls.
func baseEnv() map[string]string {
	return map[string]string{
		"ENV":        "test",
		"JWT_SECRET": jwtSecret,
		"LOG_LEVEL":  "info",
		"LOG_FORMAT": "json",

		"RATELIMIT_CREDENTIALS_REQUESTS":   "1000",
		"RATELIMIT_CREDENTIALS_BURST":      "1000",
		"RATELIMIT_AUTHENTICATED_REQUESTS": "1000",
		"RATELIMIT_AUTHENTICATED_BURST":    "1000",
	}
}

func startService(t *testing.T, env map[string]string, networks ...string) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testImageName,
			ExposedPorts: []string{"8090/tcp"},
			Env:          env,
			Networks:     networks,
			WaitingFor: wait.ForHTTP("/readyz").
				WithPort("8090/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "8090")
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, port.Port())
}

// setupSQLite starts the service on its embedded SQLite store. The database
// and pepper live at the image defaults under /data, owned by nonroot.
func setupSQLite(t *testing.T) *accountsdk.SDKClient {
	t.Helper()
	env := baseEnv()
	env["STORE_DRIVER"] = "sqlite"
	return accountsdk.NewSDKClient(startService(t, env))
}

// setupSQLiteDefaultLimits is setupSQLite with production rate limits.
func setupSQLiteDefaultLimits(t *testing.T) *accountsdk.SDKClient {
	t.Helper()
	env := map[string]string{
		"ENV":        "test",
		"JWT_SECRET": jwtSecret,
	}
	return accountsdk.NewSDKClient(startService(t, env))
}

// setupMongo starts MongoDB and the service on a shared network.
func setupMongo(t *testing.T) *accountsdk.SDKClient {
	t.Helper()
	ctx := context.Background()

	nw, err := network.New(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = nw.Remove(ctx) })

	mongo, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:          "mongo:7",
			ExposedPorts:   []string{"27017/tcp"},
			Networks:       []string{nw.Name},
			NetworkAliases: map[string][]string{nw.Name: {"mongo"}},
			WaitingFor:     wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = mongo.Terminate(ctx) })

	env := baseEnv()
	env["STORE_DRIVER"] = "mongo"
	env["MONGO_URI"] = "mongodb://mongo:27017"
	env["MONGO_DATABASE"] = "passport_e2e"
	return accountsdk.NewSDKClient(startService(t, env, nw.Name))
}

// registerAndLogin creates an account and returns its session.
func registerAndLogin(t *testing.T, client *accountsdk.SDKClient, name, email string) *accountsdk.Session {
	t.Helper()
	require.NoError(t, client.Register(t.Context(), accountsdk.RegisterRequest{
		Name: name, Email: email, Password: testPassword,
	}))
	sess, err := client.Login(t.Context(), email, testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token())
	return sess
}

func assertHealthy(t *testing.T, health *accountsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

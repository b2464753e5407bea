package e2e_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dicehall/accounts/internal/api"
	"github.com/dicehall/accounts/internal/factory"
	"github.com/dicehall/accounts/internal/testutil"
	"github.com/dicehall/accounts/internal/token"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	projectRoot := findProjectRoot(t)

	binaryPath := filepath.Join(projectRoot, "bin", "accountctl-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/accountctl")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// startServer runs a real HTTP server on a free port
func startServer(t *testing.T) string {
	t.Helper()

	app, err := factory.New(factory.Config{
		TokenConfig: token.Config{Secret: "e2e-secret"},
		BcryptCost:  bcrypt.MinCost,
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		AccountService: app.AccountService,
		TokenValidator: app.TokenIssuer,
		Clock:          app.Clock,
	})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := api.DefaultServerConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = port
	server := api.NewServer(router, cfg, testutil.NopLogger())

	go func() { _ = server.Start() }()
	t.Cleanup(func() { _ = server.Shutdown(context.Background()) })

	url := fmt.Sprintf("http://127.0.0.1:%d", port)
	waitForServer(t, url)
	return url
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url + "/api/health")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("server did not become ready")
}

func TestCLIAccountFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	serverURL := startServer(t)
	cli := newCLIRunner(t, serverURL)

	// Health check
	output, err := cli.run("health")
	require.NoError(t, err, output)
	assert.Contains(t, output, `"status": "ok"`)

	// Register
	output, err = cli.run("register", "--user", "alice", "--pass", "secret1")
	require.NoError(t, err, output)

	// Login persists the token file
	output, err = cli.run("login", "--user", "alice", "--pass", "secret1")
	require.NoError(t, err, output)

	var loginResult struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &loginResult))
	assert.True(t, loginResult.Success)
	assert.NotEmpty(t, loginResult.Token)

	saved, err := os.ReadFile(cli.tokenFile)
	require.NoError(t, err)
	assert.Equal(t, loginResult.Token, strings.TrimSpace(string(saved)))

	// Update uses the stored token
	output, err = cli.run("update", "--picture", "pic.png")
	require.NoError(t, err, output)
	assert.Contains(t, output, `"success": true`)

	// Delete removes the account and the stored token
	output, err = cli.run("delete")
	require.NoError(t, err, output)
	_, statErr := os.Stat(cli.tokenFile)
	assert.True(t, os.IsNotExist(statErr))

	// Login now fails
	output, err = cli.run("login", "--user", "alice", "--pass", "secret1")
	require.Error(t, err)
	assert.Contains(t, output, "User not found")
}

func TestCLIRejectsWrongPassword(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	serverURL := startServer(t)
	cli := newCLIRunner(t, serverURL)

	output, err := cli.run("register", "--user", "bob", "--pass", "secret1")
	require.NoError(t, err, output)

	output, err = cli.run("login", "--user", "bob", "--pass", "wrongpass")
	require.Error(t, err)
	assert.Contains(t, output, "Incorrect password")
}

func TestCLIProtectedCommandWithoutToken(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	serverURL := startServer(t)
	cli := newCLIRunner(t, serverURL)

	output, err := cli.run("update", "--picture", "pic.png")
	require.Error(t, err)
	assert.Contains(t, output, "No token provided")
}

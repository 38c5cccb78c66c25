package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
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

	"github.com/molter/wordsearch/internal/api"
	"github.com/molter/wordsearch/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "wsearch-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/wsearch")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runText(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "text",
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

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		GeneratorService: app.GeneratorService,
		WordListService:  app.WordListService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type puzzleResponse struct {
	ID             string     `json:"id"`
	Size           int        `json:"size"`
	Cells          [][]string `json:"cells"`
	Words          []string   `json:"words"`
	AllowDiagonals bool       `json:"allow_diagonals"`
	Seed           *int64     `json:"seed"`
	Solution       []struct {
		Word      string `json:"word"`
		Row       int    `json:"row"`
		Col       int    `json:"col"`
		Direction string `json:"direction"`
	} `json:"solution"`
}

type wordListResponse struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_GenerateOffline(t *testing.T) {
	// No server: generate works entirely locally
	cli := newCLIRunner(t, "http://127.0.0.1:1")

	output, err := cli.run("generate", "cat", "dog", "--size", "6", "--seed", "1", "--solution")
	require.NoError(t, err, "output: %s", output)

	var resp puzzleResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Empty(t, resp.ID)
	assert.Equal(t, 6, resp.Size)
	assert.ElementsMatch(t, []string{"CAT", "DOG"}, resp.Words)
	assert.Len(t, resp.Solution, 2)
	require.Len(t, resp.Cells, 6)
	for _, row := range resp.Cells {
		require.Len(t, row, 6)
	}

	// Same seed yields the same output
	replay, err := cli.run("generate", "cat", "dog", "--size", "6", "--seed", "1", "--solution")
	require.NoError(t, err, "output: %s", replay)
	assert.Equal(t, output, replay)
}

func TestCLI_GenerateTextOutput(t *testing.T) {
	cli := newCLIRunner(t, "http://127.0.0.1:1")

	output, err := cli.runText("generate", "cat", "--size", "5", "--seed", "1", "--solution")
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, "Words: CAT")
	assert.Contains(t, output, "CAT: row")
}

func TestCLI_PuzzleCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create a puzzle on the server
	output, err := cli.run("puzzle", "create", "cat", "dog", "--size", "6", "--seed", "1")
	require.NoError(t, err, "output: %s", output)

	var created puzzleResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.True(t, strings.HasPrefix(created.ID, "pz-"))
	id := created.ID

	// Get without solution
	output, err = cli.run("puzzle", "get", id)
	require.NoError(t, err, "output: %s", output)

	var fetched puzzleResponse
	require.NoError(t, json.Unmarshal([]byte(output), &fetched))
	assert.Equal(t, id, fetched.ID)
	assert.Empty(t, fetched.Solution)

	// Get with solution
	output, err = cli.run("puzzle", "get", id, "--solution")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &fetched))
	assert.Len(t, fetched.Solution, 2)

	// Plain text rendering
	output, err = cli.run("puzzle", "text", id)
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, "Words: CAT, DOG")

	// Delete
	output, err = cli.run("puzzle", "delete", id)
	require.NoError(t, err, "output: %s", output)

	var msgResp messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msgResp))
	assert.Equal(t, "Puzzle deleted", msgResp.Message)

	// Verify it's gone
	output, err = cli.run("puzzle", "get", id)
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")
}

func TestCLI_WordListCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create a word list from arguments
	output, err := cli.run("wordlist", "create", "animals", "cat", "dog", "fox")
	require.NoError(t, err, "output: %s", output)

	var list wordListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	assert.Equal(t, "animals", list.Name)
	assert.ElementsMatch(t, []string{"CAT", "DOG", "FOX"}, list.Words)

	// Get it back
	output, err = cli.run("wordlist", "get", "animals")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	assert.Equal(t, "animals", list.Name)

	// Generate a puzzle from the list
	output, err = cli.run("wordlist", "generate", "animals", "--size", "8", "--seed", "3")
	require.NoError(t, err, "output: %s", output)

	var puzzle puzzleResponse
	require.NoError(t, json.Unmarshal([]byte(output), &puzzle))
	assert.True(t, strings.HasPrefix(puzzle.ID, "pz-"))
	assert.ElementsMatch(t, []string{"CAT", "DOG", "FOX"}, puzzle.Words)

	// Delete the list
	output, err = cli.run("wordlist", "delete", "animals")
	require.NoError(t, err, "output: %s", output)

	var msgResp messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msgResp))
	assert.Equal(t, "Word list deleted", msgResp.Message)
}

func TestCLI_WordListFromFile(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	wordsFile := filepath.Join(t.TempDir(), "words.txt")
	content := "cat\n\n# a comment\ndog\n"
	require.NoError(t, os.WriteFile(wordsFile, []byte(content), 0o644))

	output, err := cli.run("wordlist", "create", "fromfile", "--file", wordsFile)
	require.NoError(t, err, "output: %s", output)

	var list wordListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	assert.ElementsMatch(t, []string{"CAT", "DOG"}, list.Words)
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Non-existent puzzle
	output, err := cli.run("puzzle", "get", "pz-missing")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")

	// Impossible puzzle
	output, err = cli.run("puzzle", "create", "elephant", "--size", "4")
	assert.Error(t, err)
	assert.Contains(t, output, "larger grid")

	// Offline generation with an invalid word
	output, err = cli.run("generate", "c4t", "--size", "5")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "only letters")
}

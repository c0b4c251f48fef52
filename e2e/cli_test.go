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

	"github.com/akarney/hangman/internal/api"
	"github.com/akarney/hangman/internal/factory"
	"github.com/akarney/hangman/internal/model"
	"github.com/akarney/hangman/internal/services/session"
	"github.com/akarney/hangman/internal/web"
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
	binaryPath := filepath.Join(projectRoot, "bin", "hangman-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/hangman")
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
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	return startTestServerWithRules(t, session.DefaultConfig())
}

func startTestServerWithRules(t *testing.T, rules session.Config) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	app, err := factory.New(factory.Config{SessionConfig: rules})
	require.NoError(t, err)

	// Single-entry wordlists make every pick deterministic
	require.NoError(t, app.WordlistService.Load(model.LevelBasic, []string{"python"}))
	require.NoError(t, app.WordlistService.Load(model.LevelIntermediate, []string{"data science"}))

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// Create routers
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		SessionController: app.SessionController,
		WordlistService:   app.WordlistService,
		HintService:       app.HintService,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:            logger,
		SessionController: app.SessionController,
		WordlistService:   app.WordlistService,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
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

type healthResponse struct {
	Status string `json:"status"`
}

type levelsResponse struct {
	Levels []struct {
		Name  string `json:"name"`
		Label string `json:"label"`
		Words int    `json:"words"`
	} `json:"levels"`
}

type sessionResponse struct {
	SessionID        string   `json:"session_id"`
	Level            string   `json:"level"`
	DisplayMask      string   `json:"display_mask"`
	Lives            int      `json:"lives"`
	MaxLives         int      `json:"max_lives"`
	WrongGuesses     int      `json:"wrong_guesses"`
	GuessedLetters   []string `json:"guessed_letters"`
	Outcome          string   `json:"outcome"`
	SecondsRemaining *int     `json:"seconds_remaining"`
	Answer           string   `json:"answer"`
}

type guessResponse struct {
	Letter  string          `json:"letter"`
	Correct bool            `json:"correct"`
	Message string          `json:"message"`
	Session sessionResponse `json:"session"`
}

type timeoutResponse struct {
	Message string          `json:"message"`
	Session sessionResponse `json:"session"`
}

type hintResponse struct {
	Letter string `json:"letter"`
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

func TestCLI_Levels(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("levels")
	require.NoError(t, err, "output: %s", output)

	var resp levelsResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	require.Len(t, resp.Levels, 2)
	assert.Equal(t, "basic", resp.Levels[0].Name)
	assert.Equal(t, "Basic Mode", resp.Levels[0].Label)
	assert.Equal(t, 1, resp.Levels[0].Words)
	assert.Equal(t, "intermediate", resp.Levels[1].Name)
	assert.Equal(t, "Intermediate Mode", resp.Levels[1].Label)
}

func TestCLI_SessionLifecycle(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Start a session
	output, err := cli.run("session", "new", "--level", "basic")
	require.NoError(t, err, "output: %s", output)

	var created sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.NotEmpty(t, created.SessionID)
	assert.Equal(t, "basic", created.Level)
	assert.Equal(t, "______", created.DisplayMask)
	assert.Equal(t, 6, created.Lives)
	assert.Equal(t, 6, created.MaxLives)
	assert.Equal(t, "in_progress", created.Outcome)
	require.NotNil(t, created.SecondsRemaining)
	assert.Positive(t, *created.SecondsRemaining)

	// Show it
	output, err = cli.run("session", "show", created.SessionID)
	require.NoError(t, err, "output: %s", output)

	var shown sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &shown))
	assert.Equal(t, created.SessionID, shown.SessionID)

	// A wrong guess costs a life
	output, err = cli.run("session", "guess", created.SessionID, "z")
	require.NoError(t, err, "output: %s", output)

	var wrong guessResponse
	require.NoError(t, json.Unmarshal([]byte(output), &wrong))
	assert.Equal(t, "z", wrong.Letter)
	assert.False(t, wrong.Correct)
	assert.Equal(t, "Wrong guess! You lost a life.", wrong.Message)
	assert.Equal(t, 5, wrong.Session.Lives)
	assert.Equal(t, "______", wrong.Session.DisplayMask)

	// A correct guess reveals the letter and costs nothing
	output, err = cli.run("session", "guess", created.SessionID, "p")
	require.NoError(t, err, "output: %s", output)

	var correct guessResponse
	require.NoError(t, json.Unmarshal([]byte(output), &correct))
	assert.True(t, correct.Correct)
	assert.Equal(t, "Correct guess!", correct.Message)
	assert.Equal(t, 5, correct.Session.Lives)
	assert.Equal(t, "p_____", correct.Session.DisplayMask)

	// Discard it
	output, err = cli.run("session", "discard", created.SessionID)
	require.NoError(t, err, "output: %s", output)

	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Equal(t, "Session discarded", msg.Message)

	// Gone now
	output, err = cli.run("session", "show", created.SessionID)
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")
}

func TestCLI_WinGame(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("session", "new", "--level", "basic")
	require.NoError(t, err, "output: %s", output)

	var created sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))

	var last guessResponse
	for _, letter := range []string{"p", "y", "t", "h", "o", "n"} {
		output, err = cli.run("session", "guess", created.SessionID, letter)
		require.NoError(t, err, "guess %s: %s", letter, output)
		require.NoError(t, json.Unmarshal([]byte(output), &last))
		assert.True(t, last.Correct)
	}

	assert.Equal(t, "won", last.Session.Outcome)
	assert.Equal(t, "python", last.Session.DisplayMask)
	assert.Equal(t, "python", last.Session.Answer)
	assert.Equal(t, 6, last.Session.Lives)

	// No more guesses once finished
	output, err = cli.run("session", "guess", created.SessionID, "x")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "already over")
}

func TestCLI_IntermediateLevel(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("session", "new", "--level", "intermediate")
	require.NoError(t, err, "output: %s", output)

	var created sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.Equal(t, "intermediate", created.Level)
	// Word boundaries in "data science" show through the mask
	assert.Equal(t, "____ _______", created.DisplayMask)
}

func TestCLI_HintFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("session", "new", "--level", "basic")
	require.NoError(t, err, "output: %s", output)

	var created sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))

	// With "python" the only candidate, ties break alphabetically
	output, err = cli.run("session", "hint", created.SessionID)
	require.NoError(t, err, "output: %s", output)

	var hint hintResponse
	require.NoError(t, json.Unmarshal([]byte(output), &hint))
	assert.Equal(t, "h", hint.Letter)

	// Playing the hint changes the next suggestion
	output, err = cli.run("session", "guess", created.SessionID, hint.Letter)
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("session", "hint", created.SessionID)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &hint))
	assert.Equal(t, "n", hint.Letter)
}

func TestCLI_TimeoutNotExpired(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("session", "new", "--level", "basic")
	require.NoError(t, err, "output: %s", output)

	var created sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))

	// With 15s on the clock an immediate report must be rejected
	output, err = cli.run("session", "timeout", created.SessionID)
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not expired")
}

func TestCLI_TimeoutExpired(t *testing.T) {
	ts := startTestServerWithRules(t, session.Config{
		MaxLives:    6,
		TurnTimeout: 50 * time.Millisecond,
	})
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("session", "new", "--level", "basic")
	require.NoError(t, err, "output: %s", output)

	var created sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))

	time.Sleep(200 * time.Millisecond)

	output, err = cli.run("session", "timeout", created.SessionID)
	require.NoError(t, err, "output: %s", output)

	var timedOut timeoutResponse
	require.NoError(t, json.Unmarshal([]byte(output), &timedOut))
	assert.Equal(t, "Time's up! You lost a life.", timedOut.Message)
	assert.Equal(t, 5, timedOut.Session.Lives)
	assert.Equal(t, "______", timedOut.Session.DisplayMask)
	assert.Empty(t, timedOut.Session.GuessedLetters)
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Unknown session
	output, err := cli.run("session", "show", "nosuchsession")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")

	// Unknown level
	output, err = cli.run("session", "new", "--level", "expert")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "basic or intermediate")

	// Client-side guess validation never reaches the server
	output, err = cli.run("session", "new", "--level", "basic")
	require.NoError(t, err, "output: %s", output)
	var created sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))

	output, err = cli.run("session", "guess", created.SessionID, "ab")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "single character")
}

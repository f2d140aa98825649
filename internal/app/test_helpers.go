package app

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance for system testing. The operator
// input is the given lines, each terminated by a newline; the returned
// buffers capture the shell output and the logs.
func SetupAppTest(t *testing.T, cfg Config, input ...string) (*App, *bytes.Buffer, *SafeBuffer) {
	t.Helper()

	cfg.LogLevel = "debug"
	appConfig, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	in := strings.NewReader(strings.Join(input, "\n") + "\n")
	if len(input) == 0 {
		in = strings.NewReader("")
	}
	out := &bytes.Buffer{}
	logBuffer := &SafeBuffer{}
	testApp := NewApp(in, out, logBuffer, appConfig)

	t.Cleanup(func() {
		if os.Getenv("GAMEBOOK_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, out, logBuffer
}

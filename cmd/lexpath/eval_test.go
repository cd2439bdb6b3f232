package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pgavlin/lexpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	m   sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.m.Lock()
	defer b.m.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.m.Lock()
	defer b.m.Unlock()
	return b.buf.String()
}

func TestEvalWatch(t *testing.T) {
	dir, err := filepath.EvalSymlinks(chdirTemp(t))
	require.NoError(t, err)

	script := writeScript(t, dir, `print(path.join("a", "one"))`)

	var stdout, stderr syncBuffer
	a := &app{
		dialect: dialectFlag{lexpath.Posix},
		cwd:     "/work",
		stdout:  &stdout,
		stderr:  &stderr,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- a.watch(ctx, script, 0) }()

	assert.Eventually(t, func() bool {
		return strings.HasPrefix(stdout.String(), "a/one\n")
	}, 5*time.Second, 10*time.Millisecond)

	// Give the watch time to settle before the script changes.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(script, []byte(`print(path.resolve("two"))`), 0o600))

	assert.Eventually(t, func() bool {
		return strings.HasSuffix(stdout.String(), "/work/two\n")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
	t.Logf("stderr: %v", stderr.String())
}

func TestEvalWatchMissingDirectory(t *testing.T) {
	dir := chdirTemp(t)

	a := &app{dialect: dialectFlag{lexpath.Posix}, stdout: &syncBuffer{}, stderr: &syncBuffer{}}
	err := a.watch(context.Background(), filepath.Join(dir, "missing", "test.star"), 0)
	assert.Error(t, err)
}

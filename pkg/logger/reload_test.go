package logger

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReloadOnSignal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	ws, err := NewReopenableWriteSyncer(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })

	core, logs := observer.New(zapcore.InfoLevel)
	stop := ReloadOnSignal(zap.New(core), ws)
	defer stop()

	// simulate logrotate moving the file away
	require.NoError(t, os.Rename(path, path+".1"))
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGHUP))

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("successfully reloaded log file").Len() == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.FileExists(t, path)
}

package logger

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// ReloadOnSignal reopens the log file every time SIGHUP arrives. The returned
// function stops listening.
func ReloadOnSignal(log *zap.Logger, ws *ReopenableWriteSyncer) (stop func()) {
	c := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			select {
			case <-c:
				log.Info("receive logrotate SIGHUP, reloading log file", zap.String("path", ws.Path()))
				if err := ws.Reload(); err != nil {
					log.Error("failed to reload log file", zap.Error(err))
				} else {
					log.Info("successfully reloaded log file")
				}
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(c)
		close(done)
	}
}

package handler

import (
	"Library_Demo_Service/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger records handler failures together with the request they happened on.
type Logger interface {
	LoggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level)
}

type requestLogger struct {
	log *zap.Logger
}

func (l *requestLogger) LoggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	ce := l.log.Check(logLevel, errDescription)
	if ce == nil {
		return
	}
	ce.Write(append(middleware.RequestFields(c), zap.Error(err))...)
}

func NewLogger(l *zap.Logger) Logger {
	return &requestLogger{
		log: l.With(zap.String("component", "handler")),
	}
}

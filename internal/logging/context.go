package logging

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

type logDataKey struct{}

// WithLogData attaches logData to ctx.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, logData)
}

// GetLogData returns the LogData attached to ctx, or a fresh one on the
// standard logger when none is attached.
func GetLogData(ctx context.Context) *LogData {
	if logData, ok := ctx.Value(logDataKey{}).(*LogData); ok {
		return logData
	}
	return NewLogData(logrus.StandardLogger())
}

// HumaMiddleware gives every operation its own LogData and logs the outcome
// once the handler returns.
func HumaMiddleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)
		operationID := ctx.Operation().OperationID
		logData.AddData("operation", operationID)

		endTimer := logData.AddTiming("duration")
		next(huma.WithContext(ctx, WithLogData(ctx.Context(), logData)))
		endTimer()

		logData.AddData("status", ctx.Status())
		if ctx.Status() >= 500 {
			logData.Log().Errorf("Handler.%v.Error", operationID)
			return
		}
		logData.Log().Infof("Handler.%v.Complete", operationID)
	}
}

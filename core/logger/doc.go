// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance supporting development (console)
// and production (json) encodings, and integrates with the Fiber query
// server through the WithRayID helper, which attaches the request's RayID
// to every log entry so logs for one request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("installation indexed")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("handler failed", zap.Error(err))
package logger

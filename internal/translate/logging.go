package translate

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingProvider logs every request with its latency and token usage.
type LoggingProvider struct {
	inner Provider
	log   *logrus.Entry
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log *logrus.Entry) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	entry := l.log.WithFields(logrus.Fields{
		"model":      l.inner.ModelID(),
		"schema":     schemaName(req.Schema),
		"latency_ms": time.Since(start).Milliseconds(),
	})
	if resp != nil {
		entry = entry.WithFields(logrus.Fields{
			"input_tokens":  resp.Usage.InputTokens,
			"output_tokens": resp.Usage.OutputTokens,
		})
	}
	if err != nil {
		entry.WithError(err).Warn("translation request failed")
	} else {
		entry.Debug("translation request done")
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func schemaName(s *Schema) string {
	if s == nil {
		return ""
	}
	return s.Name
}

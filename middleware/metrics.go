package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	aws_pkg "github.com/ramses2099/storeapiv2/pkg/aws"
	"go.uber.org/zap"
)

// Metrics records request count, latency and error counts for every request.
// Dimensions use the route pattern so ids do not create new series. Failed
// puts are logged at debug level.
func Metrics(recorder aws_pkg.MetricsRecorder, serviceName string, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		if recorder == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		dimensions := map[string]string{
			"Service": serviceName,
			"Method":  c.Request.Method,
			"Path":    path,
			"Status":  statusCodeToRange(status),
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			check := func(metric string, err error) {
				if err != nil {
					logger.Debug("CloudWatch metric not recorded",
						zap.String("metric", metric),
						zap.String("path", path),
						zap.Error(err),
					)
				}
			}
			check(aws_pkg.MetricHTTPRequests, recorder.RecordCount(ctx, aws_pkg.MetricHTTPRequests, dimensions))
			check(aws_pkg.MetricHTTPLatency, recorder.RecordLatency(ctx, aws_pkg.MetricHTTPLatency, duration, dimensions))
			switch {
			case status >= 500:
				check(aws_pkg.MetricHTTP5xx, recorder.RecordCount(ctx, aws_pkg.MetricHTTP5xx, dimensions))
			case status >= 400:
				check(aws_pkg.MetricHTTP4xx, recorder.RecordCount(ctx, aws_pkg.MetricHTTP4xx, dimensions))
			}
		}()
	}
}

func statusCodeToRange(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

package aws

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
)

// logsAPI is the part of the CloudWatch Logs client the writer uses.
type logsAPI interface {
	CreateLogGroup(ctx context.Context, in *cloudwatchlogs.CreateLogGroupInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.CreateLogGroupOutput, error)
	PutRetentionPolicy(ctx context.Context, in *cloudwatchlogs.PutRetentionPolicyInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.PutRetentionPolicyOutput, error)
	CreateLogStream(ctx context.Context, in *cloudwatchlogs.CreateLogStreamInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.CreateLogStreamOutput, error)
	PutLogEvents(ctx context.Context, in *cloudwatchlogs.PutLogEventsInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.PutLogEventsOutput, error)
}

const logRetentionDays = 30

// CloudWatchLogsWriter ships each written log line to a CloudWatch Logs
// stream. It is meant to sit behind a zap core next to the console output.
type CloudWatchLogsWriter struct {
	api    logsAPI
	group  string
	stream string
	errOut io.Writer
	mu     sync.Mutex
}

// NewCloudWatchLogsWriter creates the log group (if missing) and a fresh
// stream named after service and the start time.
func NewCloudWatchLogsWriter(ctx context.Context, cfg sdkaws.Config, group, service string) (*CloudWatchLogsWriter, error) {
	stream := fmt.Sprintf("%s-%d", service, time.Now().Unix())
	return newCloudWatchLogsWriter(ctx, cloudwatchlogs.NewFromConfig(cfg), group, stream)
}

func newCloudWatchLogsWriter(ctx context.Context, api logsAPI, group, stream string) (*CloudWatchLogsWriter, error) {
	w := &CloudWatchLogsWriter{api: api, group: group, stream: stream, errOut: os.Stderr}

	_, err := api.CreateLogGroup(ctx, &cloudwatchlogs.CreateLogGroupInput{LogGroupName: sdkaws.String(group)})
	var exists *types.ResourceAlreadyExistsException
	if err != nil && !errors.As(err, &exists) {
		return nil, fmt.Errorf("failed to create log group %s: %w", group, err)
	}
	if _, err := api.PutRetentionPolicy(ctx, &cloudwatchlogs.PutRetentionPolicyInput{
		LogGroupName:    sdkaws.String(group),
		RetentionInDays: sdkaws.Int32(logRetentionDays),
	}); err != nil {
		return nil, fmt.Errorf("failed to set retention on %s: %w", group, err)
	}
	if _, err := api.CreateLogStream(ctx, &cloudwatchlogs.CreateLogStreamInput{
		LogGroupName:  sdkaws.String(group),
		LogStreamName: sdkaws.String(stream),
	}); err != nil {
		return nil, fmt.Errorf("failed to create log stream %s: %w", stream, err)
	}
	return w, nil
}

// Write sends p as one log event. Delivery failures go to stderr and never
// fail the caller's log statement.
func (w *CloudWatchLogsWriter) Write(p []byte) (int, error) {
	msg := string(bytes.TrimRight(p, "\n"))
	if msg == "" {
		return len(p), nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := w.api.PutLogEvents(ctx, &cloudwatchlogs.PutLogEventsInput{
		LogGroupName:  sdkaws.String(w.group),
		LogStreamName: sdkaws.String(w.stream),
		LogEvents: []types.InputLogEvent{{
			Message:   sdkaws.String(msg),
			Timestamp: sdkaws.Int64(time.Now().UnixMilli()),
		}},
	})
	if err != nil {
		fmt.Fprintf(w.errOut, "cloudwatch logs write to %s/%s failed: %v\n", w.group, w.stream, err)
	}
	return len(p), nil
}

// Sync is a no-op; every Write is delivered synchronously.
func (w *CloudWatchLogsWriter) Sync() error { return nil }

func (w *CloudWatchLogsWriter) Stream() string { return w.stream }

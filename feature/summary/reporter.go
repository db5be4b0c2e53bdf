package summary

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"country-currency/core/apperrors"
	"country-currency/core/metrics"
	"country-currency/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Reporter renders summary events and stores the result in object storage.
type Reporter struct {
	client  storage.Client
	bucket  string
	cfg     Config
	logger  *zap.Logger
	metrics *metrics.Metrics
	events  chan Event
}

// NewReporter creates a reporter writing to bucket. m may be nil.
func NewReporter(client storage.Client, bucket string, cfg Config, logger *zap.Logger, m *metrics.Metrics) *Reporter {
	size := cfg.QueueSize
	if size <= 0 {
		size = 1
	}
	return &Reporter{
		client:  client,
		bucket:  bucket,
		cfg:     cfg,
		logger:  logger,
		metrics: m,
		events:  make(chan Event, size),
	}
}

// Publish enqueues e without blocking. It returns false and drops e when the queue is full.
func (r *Reporter) Publish(e Event) bool {
	select {
	case r.events <- e:
		return true
	default:
		r.logger.Warn("Summary queue full, dropping event",
			zap.Int64("total", e.Total),
			zap.Time("refreshed_at", e.RefreshedAt))
		return false
	}
}

// Run consumes published events until ctx is cancelled.
func (r *Reporter) Run(ctx context.Context) {
	r.logger.Info("Summary worker started", zap.String("object", r.cfg.ObjectName))
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Summary worker stopped")
			return
		case e := <-r.events:
			if err := r.Generate(ctx, e); err != nil {
				r.logger.Error("Summary generation failed", zap.Error(err))
			}
		}
	}
}

// Generate renders e and uploads it, creating the bucket when missing.
func (r *Reporter) Generate(ctx context.Context, e Event) (err error) {
	defer func() { r.metrics.ObserveSummary(err) }()

	data, err := Render(e)
	if err != nil {
		return err
	}

	exists, err := r.client.BucketExists(ctx, r.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", r.bucket, err)
	}
	if !exists {
		if err := r.client.MakeBucket(ctx, r.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", r.bucket, err)
		}
	}

	_, err = r.client.PutObject(ctx, r.bucket, r.cfg.ObjectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "image/png"})
	if err != nil {
		return fmt.Errorf("failed to upload summary: %w", err)
	}

	r.logger.Info("Summary generated",
		zap.String("object", r.cfg.ObjectName),
		zap.Int("bytes", len(data)),
		zap.Int64("total", e.Total))
	return nil
}

// Open returns the latest summary image and its size.
// It fails with apperrors.ErrNotFound when no summary was generated yet.
func (r *Reporter) Open(ctx context.Context) (io.ReadCloser, int64, error) {
	info, err := r.client.StatObject(ctx, r.bucket, r.cfg.ObjectName, minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, 0, fmt.Errorf("summary image: %w", apperrors.ErrNotFound)
		}
		return nil, 0, fmt.Errorf("failed to stat summary: %w", err)
	}

	obj, err := r.client.GetObject(ctx, r.bucket, r.cfg.ObjectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read summary: %w", err)
	}
	return obj, info.Size, nil
}

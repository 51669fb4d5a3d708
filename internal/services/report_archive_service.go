package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"restomart/internal/models"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ReportArchive stores closed-day sales reports in object storage
type ReportArchive interface {
	EnsureBucketExists(ctx context.Context) error
	Archive(ctx context.Context, report *models.DailyReport) (string, error)
}

// objectStore is the subset of *minio.Client the archive needs
type objectStore interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
}

type minioReportArchive struct {
	client objectStore
	bucket string
}

// NewMinioReportArchive creates a report archive backed by a MinIO bucket
func NewMinioReportArchive(endpoint, accessKey, secretKey, bucket string, useSSL bool) (ReportArchive, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioReportArchive{client: client, bucket: bucket}, nil
}

// ReportObjectName returns the object key of the report for day (YYYY-MM-DD)
func ReportObjectName(day string) string {
	return fmt.Sprintf("reports/daily/%s.json", day)
}

func (m *minioReportArchive) EnsureBucketExists(ctx context.Context) error {
	found, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !found {
		return m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
	}
	return nil
}

// Archive uploads report as JSON and returns the object name it was written to.
// Re-archiving a day overwrites the previous object.
func (m *minioReportArchive) Archive(ctx context.Context, report *models.DailyReport) (string, error) {
	if report.Day == "" {
		return "", fmt.Errorf("archive report: day is required")
	}
	data, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	objectName := ReportObjectName(report.Day)
	_, err = m.client.PutObject(ctx, m.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("upload report %s: %w", objectName, err)
	}
	return objectName, nil
}

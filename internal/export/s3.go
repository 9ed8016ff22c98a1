package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Backup uploads export snapshots to S3. Like the mirror, this is a
// best-effort copy of small tables, not a transactional backup.
type Backup struct {
	client *s3.Client
	bucket string
}

func NewBackup(region, bucket, accessKey, secretKey string) *Backup {
	if bucket == "" || accessKey == "" || secretKey == "" {
		return nil
	}
	return &Backup{
		bucket: bucket,
		client: s3.New(s3.Options{
			Region:      region,
			Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		}),
	}
}

func (b *Backup) Enabled() bool {
	return b != nil
}

// Upload stores one table snapshot and returns its object key.
func (b *Backup) Upload(ctx context.Context, table string, data []byte, contentType string, at time.Time) (string, error) {
	if !b.Enabled() {
		return "", fmt.Errorf("backup not configured")
	}

	ext := "csv"
	if contentType == "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		ext = "xlsx"
	}
	key := fmt.Sprintf("backups/%s/%s.%s", table, at.Format("20060102_150405"), ext)

	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

package storage

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/VaultSyncBR/backup-console/internal/config"
)

// FilePresigner gera URLs temporárias de download para os arquivos de backup.
type FilePresigner interface {
	PresignDownload(ctx context.Context, key string, expires time.Duration) (string, error)
}

type BackupFileStore struct {
	presign *s3.PresignClient
	bucket  string
}

func NewBackupFileStore(cfg *config.Config) *BackupFileStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	// endpoint customizado (MinIO / Wasabi) usa path-style
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	client := s3.New(opts)

	return &BackupFileStore{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.S3Bucket,
	}
}

// ObjectKey segue o layout do bucket dos agentes: <client_id>/<file_name>
func ObjectKey(clientID, fileName string) string {
	return clientID + "/" + fileName
}

func (s *BackupFileStore) PresignDownload(
	ctx context.Context,
	key string,
	expires time.Duration,
) (string, error) {

	out, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}

	return out.URL, nil
}

var _ FilePresigner = (*BackupFileStore)(nil)

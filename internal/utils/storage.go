package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

var (
	S3Session       *session.Session
	S3Bucket        string
	S3Region        string
	UseLocalStorage bool = true // Toggle: true = local, false = S3
)

const BackupBasePath = "./backups"

func InitBackupStorage() error {
	if err := os.MkdirAll(BackupBasePath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %v", BackupBasePath, err)
	}
	return nil
}

func InitS3(bucket, region string) error {
	S3Bucket = bucket
	S3Region = region

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return err
	}

	S3Session = sess
	UseLocalStorage = false
	return nil
}

// BackupFilename returns a collision-safe archive name like
// 20240120-143000-1a2b3c4d.tar.gz.
func BackupFilename() string {
	return fmt.Sprintf("%s-%s.tar.gz",
		time.Now().Format("20060102-150405"),
		uuid.New().String()[:8],
	)
}

// StoreBackup moves an archive to its destination and returns its location
// (path for local storage, object URL for S3).
func StoreBackup(srcPath, filename string) (string, error) {
	if UseLocalStorage {
		return storeBackupLocal(srcPath, filename)
	}
	return storeBackupS3(srcPath, filename)
}

func storeBackupLocal(srcPath, filename string) (string, error) {
	dst := filepath.Join(BackupBasePath, filename)
	if err := os.Rename(srcPath, dst); err != nil {
		return "", fmt.Errorf("failed to store backup: %v", err)
	}
	return dst, nil
}

func storeBackupS3(srcPath, filename string) (string, error) {
	if S3Session == nil {
		return "", fmt.Errorf("S3 not initialized, using local storage instead")
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := fmt.Sprintf("backups/%s/%s", time.Now().Format("2006/01"), filename)

	svc := s3.New(S3Session)
	_, err = svc.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(S3Bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String("application/gzip"),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", S3Bucket, S3Region, key), nil
}

func DeleteBackup(location string) error {
	if UseLocalStorage {
		return os.Remove(location)
	}
	return deleteBackupS3(location)
}

func deleteBackupS3(url string) error {
	if S3Session == nil {
		return fmt.Errorf("S3 not initialized")
	}

	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", S3Bucket, S3Region)
	if len(url) <= len(prefix) {
		return fmt.Errorf("unrecognized backup location: %s", url)
	}
	key := url[len(prefix):]

	svc := s3.New(S3Session)
	_, err := svc.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(S3Bucket),
		Key:    aws.String(key),
	})

	return err
}

func GetStorageMode() string {
	if UseLocalStorage {
		return "local"
	}
	return "s3"
}

func SetStorageMode(useLocal bool) {
	UseLocalStorage = useLocal
}

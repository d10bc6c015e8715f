package contracts

import (
	"context"
	"time"
)

type Storage interface {
	PutObject(ctx context.Context, bucketName, objectName string, body []byte, contentType string) error
	ObjectExists(ctx context.Context, bucketName, objectName string) (bool, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}

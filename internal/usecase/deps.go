package usecase

import (
	"io"
	"time"
)

// FileStorage is the slice of the S3 client the use cases need.
type FileStorage interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
	PresignDownloadURL(key string, expiry time.Duration) (string, error)
}

// TaskPublisher publishes marketplace events to the queue. A nil publisher
// disables events without disabling the marketplace.
type TaskPublisher interface {
	PublishTask(task map[string]interface{}) error
}

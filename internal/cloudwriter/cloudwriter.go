// Package cloudwriter uploads experiment artifacts (result files,
// history backups) to object storage.
package cloudwriter

// CloudWriter buffers writes and uploads the accumulated object on
// Close.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

// CloudWriterFactory creates writers bound to a bucket and object key.
type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}

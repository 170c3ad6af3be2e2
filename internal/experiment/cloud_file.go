package experiment

import (
	"fmt"
	"io"

	"github.com/bodaroute/bodaroute/internal/cloudwriter"
	"github.com/xitongsys/parquet-go/source"
)

// cloudParquetFile adapts a CloudWriter to the parquet source.File
// interface. Only sequential writes are supported; the parquet writer
// never reads back or seeks from the end while producing a file.
type cloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func newCloudParquetFile(cw cloudwriter.CloudWriter) source.ParquetFile {
	return &cloudParquetFile{cloudWriter: cw}
}

func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error) {
	// Cloud objects are created implicitly on first write; the current
	// instance is already set up for writing.
	return c, nil
}

func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *cloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *cloudParquetFile) Write(p []byte) (n int, err error) {
	n, err = c.cloudWriter.Write(p)
	c.offset += int64(n)
	return n, err
}

func (c *cloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}

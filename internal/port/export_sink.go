package port

import (
	"context"
	"io"
)

type ExportSink interface {
	// Put stores an exported file under name and returns where it ended up
	Put(ctx context.Context, name string, contentType string, r io.Reader) (string, error)
}

package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
)

// Read returns the raw bytes of a source document. ref is either a local
// filesystem path or a "gs://bucket/object" URI.
func Read(ctx context.Context, ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "gs://") {
		return readGCS(ctx, ref)
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("read source %q: %w", ref, err)
	}
	return data, nil
}

func readGCS(ctx context.Context, uri string) ([]byte, error) {
	bucket, object, err := SplitGCSURI(uri)
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	defer client.Close()

	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open GCS object reader for %q: %w", uri, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read GCS object %q: %w", uri, err)
	}
	return data, nil
}

// SplitGCSURI splits "gs://bucket/path/to/object" into bucket and object.
func SplitGCSURI(uri string) (bucket, object string, err error) {
	trimmed := strings.TrimPrefix(uri, "gs://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid GCS URI %q, want gs://bucket/object", uri)
	}
	return parts[0], parts[1], nil
}

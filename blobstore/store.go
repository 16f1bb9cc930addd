package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for storing immutable data blobs (fixtures).
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Create creates a blob for streaming writes. The blob becomes visible on Close.
	Create(ctx context.Context, name string) (WritableBlob, error)
	// Put writes a blob atomically.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the sorted names of all blobs with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.Closer
	// ReadAt reads len(p) bytes at off. Short reads at the end return io.EOF.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// ReadRange returns a reader over [off, off+length), truncated at the end
	// of the blob. An offset at or past the end returns io.EOF.
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)
	// Size returns the size of the blob in bytes.
	Size() int64
}

// WritableBlob is a blob being written.
type WritableBlob interface {
	io.WriteCloser
	// Sync flushes buffered data where the backend supports it.
	Sync() error
}

// ReadAll opens name and reads the whole blob.
func ReadAll(ctx context.Context, store BlobStore, name string) ([]byte, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = blob.Close() }()

	buf := make([]byte, blob.Size())
	n, err := blob.ReadAt(ctx, buf, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if int64(n) != blob.Size() {
		return nil, fmt.Errorf("read %s: short read %d of %d bytes", name, n, blob.Size())
	}
	return buf, nil
}

// clampRange returns the end offset of [off, off+length) within size, or
// io.EOF if off is outside the blob.
func clampRange(off, length, size int64) (int64, error) {
	if off < 0 || off >= size {
		return 0, io.EOF
	}
	return min(off+length, size), nil
}

// ListPrefix returns the object-key prefix that selects names starting with
// prefix inside root. A non-empty root is terminated by "/" so that sibling
// roots sharing its leading bytes never match.
func ListPrefix(root, prefix string) string {
	root = strings.TrimSuffix(root, "/")
	if root == "" {
		return prefix
	}
	return root + "/" + prefix
}

// RelName strips root from an object key. It reports false for keys that
// lie outside root or name root itself.
func RelName(root, key string) (string, bool) {
	rel, ok := strings.CutPrefix(key, ListPrefix(root, ""))
	return rel, ok && rel != ""
}

package object

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"

	"resume-builder/internal/shared/util"
)

// ErrInvalidKey is returned for storage keys that escape the store root.
var ErrInvalidKey = errors.New("invalid storage key")

// NewKey builds a storage key "<owner hash>/<uuid>_<file name>". The owner
// hash keeps identities out of paths and the uuid keeps repeated exports of
// the same file name apart.
func NewKey(owner, fileName string) (string, error) {
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", fmt.Errorf("sanitize file name: %w", err)
	}
	return util.HashUserKey(owner) + "/" + uuid.NewString() + "_" + name, nil
}

// CleanKey validates a key read back from a repository.
func CleanKey(key string) (string, error) {
	clean := path.Clean("/" + strings.TrimSpace(key))[1:]
	if clean == "" || clean != strings.TrimLeft(key, "/") {
		return "", ErrInvalidKey
	}
	return clean, nil
}

// Sniff peeks at the head of r to detect its content type. The returned
// reader yields the full stream, sniffed bytes included.
func Sniff(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", nil, fmt.Errorf("read head: %w", err)
	}
	head = head[:n]
	return http.DetectContentType(head), io.MultiReader(bytes.NewReader(head), r), nil
}

// CountingReader counts bytes read through it.
type CountingReader struct {
	R io.Reader
	N int64
}

func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.R.Read(p)
	c.N += int64(n)
	return n, err
}

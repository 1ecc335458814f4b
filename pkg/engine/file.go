package engine

import (
	"bytes"
	"os"

	"github.com/mwpeters/hilite/pkg/errors"
)

// binaryProbeSize is how many leading bytes are checked for NUL when
// deciding whether a file is binary.
const binaryProbeSize = 8000

// ReadFile reads a file for highlighting. Files larger than maxSize (when
// maxSize > 0) and files that look binary are refused with coded errors.
func ReadFile(path string, maxSize int64) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(err, errors.ErrFileNotFound, "no such file: %s", path)
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
	}
	if info.IsDir() {
		return "", errors.Newf(errors.ErrFileAccess, "%s is a directory", path)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return "", errors.Newf(errors.ErrFileTooLarge,
			"%s is %d bytes, limit is %d", path, info.Size(), maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
	}
	if IsBinary(data) {
		return "", errors.Newf(errors.ErrFileBinary, "%s looks binary", path)
	}
	return string(data), nil
}

// IsBinary reports whether data looks like binary content. The probe is a
// NUL byte within the leading bytes, the same heuristic diff tools use.
func IsBinary(data []byte) bool {
	probe := data
	if len(probe) > binaryProbeSize {
		probe = probe[:binaryProbeSize]
	}
	return bytes.IndexByte(probe, 0) >= 0
}

// File reads and highlights a file in one step.
func (h *Highlighter) File(path string, maxSize int64) (Document, error) {
	text, err := ReadFile(path, maxSize)
	if err != nil {
		return Document{}, err
	}
	return h.Document(path, text), nil
}

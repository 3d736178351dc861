package serialization

import "github.com/pkg/errors"

// Sentinel errors for file validation failures.
var (
	// ErrBadMagic indicates the file does not start with the SEED magic.
	ErrBadMagic = errors.New("serialization: not a .seed file (bad magic)")

	// ErrUnsupportedVersion indicates a format version this build cannot read.
	ErrUnsupportedVersion = errors.New("serialization: unsupported format version")

	// ErrChecksum indicates the stored checksum does not match the contents.
	ErrChecksum = errors.New("serialization: checksum mismatch (file corrupted)")
)

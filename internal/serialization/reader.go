package serialization

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/seed-ml/seed/internal/tensor"
)

// Load reads a .seed file and returns its header and tensors in stored
// order. The checksum is verified before anything is decoded.
func Load(path string) (*Header, []Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "serialization: read file")
	}

	fixed := len(Magic) + 4 + checksumSize
	if len(raw) < fixed+4 {
		return nil, nil, ErrBadMagic
	}
	if string(raw[:len(Magic)]) != Magic {
		return nil, nil, ErrBadMagic
	}
	version := binary.LittleEndian.Uint32(raw[len(Magic) : len(Magic)+4])
	if version != FormatVersion {
		return nil, nil, errors.Wrapf(ErrUnsupportedVersion, "version %d", version)
	}

	stored := raw[len(Magic)+4 : fixed]
	body := raw[fixed:]
	checksum := sha256.Sum256(body)
	if !bytes.Equal(stored, checksum[:]) {
		return nil, nil, ErrChecksum
	}

	headerLen := binary.LittleEndian.Uint32(body[:4])
	if int(headerLen) > len(body)-4 {
		return nil, nil, errors.New("serialization: truncated header")
	}
	var header Header
	if err := json.Unmarshal(body[4:4+headerLen], &header); err != nil {
		return nil, nil, errors.Wrap(err, "serialization: decode header")
	}

	data := body[4+headerLen:]
	entries := make([]Entry, 0, len(header.Tensors))
	for _, meta := range header.Tensors {
		if meta.Offset < 0 || meta.Offset+meta.Size > int64(len(data)) {
			return nil, nil, errors.Errorf("serialization: tensor %q extends past data section", meta.Name)
		}
		shape := tensor.Shape(meta.Shape)
		if int64(shape.NumElements()*8) != meta.Size {
			return nil, nil, errors.Errorf("serialization: tensor %q size %d does not match shape %v",
				meta.Name, meta.Size, shape)
		}

		values := make([]float64, shape.NumElements())
		section := data[meta.Offset : meta.Offset+meta.Size]
		for i := range values {
			bits := binary.LittleEndian.Uint64(section[i*8 : i*8+8])
			values[i] = math.Float64frombits(bits)
		}
		t, err := tensor.FromSlice(values, shape)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "serialization: tensor %q", meta.Name)
		}
		entries = append(entries, Entry{Name: meta.Name, Tensor: t})
	}

	return &header, entries, nil
}

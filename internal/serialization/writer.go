package serialization

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/seed-ml/seed/internal/tensor"
)

// Entry is a named tensor to persist. Order is preserved on disk.
type Entry struct {
	Name   string
	Tensor *tensor.Tensor
}

// Save writes entries to path in the .seed format. The checkpoint metadata
// is optional.
func Save(path, modelType string, entries []Entry, checkpoint *CheckpointMeta) error {
	if len(entries) == 0 {
		return errors.New("serialization: no tensors to save")
	}

	header := Header{
		FormatVersion: FormatVersion,
		ModelType:     modelType,
		CreatedAt:     time.Now().UTC(),
		Checkpoint:    checkpoint,
	}

	var data bytes.Buffer
	offset := int64(0)
	for _, entry := range entries {
		size := int64(entry.Tensor.NumElements() * 8)
		header.Tensors = append(header.Tensors, TensorMeta{
			Name:   entry.Name,
			Shape:  entry.Tensor.Shape().Clone(),
			Offset: offset,
			Size:   size,
		})
		for _, v := range entry.Tensor.Data() {
			var buf [8]byte
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			data.Write(buf[:])
		}
		offset += size
	}

	headerJSON, err := json.Marshal(&header)
	if err != nil {
		return errors.Wrap(err, "serialization: encode header")
	}

	// Checksummed region: header length + header + tensor data.
	var body bytes.Buffer
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(headerJSON)))
	body.Write(lenBuf[:])
	body.Write(headerJSON)
	body.Write(data.Bytes())

	checksum := sha256.Sum256(body.Bytes())

	var file bytes.Buffer
	file.WriteString(Magic)
	var verBuf [4]byte
	binary.LittleEndian.PutUint32(verBuf[:], FormatVersion)
	file.Write(verBuf[:])
	file.Write(checksum[:])
	file.Write(body.Bytes())

	if err := os.WriteFile(path, file.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "serialization: write file")
	}
	return nil
}

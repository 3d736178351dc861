// Package serialization persists trained parameters to disk.
//
// File layout of the .seed format:
//
//	[4]  magic "SEED"
//	[4]  format version (uint32, little-endian)
//	[32] SHA-256 checksum over everything that follows
//	[4]  header length in bytes (uint32, little-endian)
//	[n]  JSON header (Header)
//	[..] tensor data: float64 little-endian, in header order
//
// Tensor order in the header is significant: it preserves the model's
// parameter order (by layer, then by parameter within layer), so loading
// restores values positionally as well as by name.
package serialization

import "time"

// Format constants.
const (
	Magic         = "SEED"
	FormatVersion = 1
	checksumSize  = 32
)

// Header is the JSON header of a .seed file.
type Header struct {
	FormatVersion int             `json:"format_version"`
	ModelType     string          `json:"model_type"`
	CreatedAt     time.Time       `json:"created_at"`
	Tensors       []TensorMeta    `json:"tensors"`
	Checkpoint    *CheckpointMeta `json:"checkpoint,omitempty"`
}

// CheckpointMeta carries training state alongside the parameters.
type CheckpointMeta struct {
	Epoch int     `json:"epoch"`
	Loss  float64 `json:"loss"`
	LR    float64 `json:"lr"`
}

// TensorMeta describes one tensor in the data section.
type TensorMeta struct {
	Name   string `json:"name"`
	Shape  []int  `json:"shape"`
	Offset int64  `json:"offset"` // Bytes from the start of the data section
	Size   int64  `json:"size"`   // Bytes
}

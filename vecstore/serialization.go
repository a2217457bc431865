package vecstore

import (
	"fmt"
	"os"

	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// The index artifact is an opaque binary blob: varint dimension, varint
// vector count, then count*dimension raw little-endian float32 values.

// Save writes the index to path. The write is not atomic; the caller owns
// any coordination with the metadata artifact.
func (x *FlatIndex) Save(path string) error {
	count := x.Len()

	size := varint.Uint64.Size(uint64(x.dim)) + varint.Uint64.Size(uint64(count))
	for _, v := range x.data {
		size += raw.Float32.Size(v)
	}

	buf := make([]byte, size)
	n := varint.Uint64.Marshal(uint64(x.dim), buf)
	n += varint.Uint64.Marshal(uint64(count), buf[n:])
	for _, v := range x.data {
		n += raw.Float32.Marshal(v, buf[n:])
	}

	return os.WriteFile(path, buf, 0644)
}

// LoadFlatIndex reads an index previously written by Save.
func LoadFlatIndex(path string) (*FlatIndex, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	dim, n, err := varint.Uint64.Unmarshal(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptIndex, err)
	}
	count, n1, err := varint.Uint64.Unmarshal(buf[n:])
	n += n1
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptIndex, err)
	}

	index, err := NewFlatIndex(int(dim))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptIndex, err)
	}

	total := int(dim) * int(count)
	index.data = make([]float32, 0, total)
	for i := 0; i < total; i++ {
		v, n1, err := raw.Float32.Unmarshal(buf[n:])
		n += n1
		if err != nil {
			return nil, fmt.Errorf("%w: truncated at value %d: %w", ErrCorruptIndex, i, err)
		}
		index.data = append(index.data, v)
	}

	if n != len(buf) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorruptIndex, len(buf)-n)
	}

	return index, nil
}

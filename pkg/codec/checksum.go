package codec

import (
	"encoding/binary"
	"hash"
	"math/bits"
)

// Checksum computes the rolling record checksum over b.
//
// Each little-endian 32-bit word is folded in as acc = rotl(acc, 1) + word,
// starting from zero. A trailing partial word does not contribute.
func Checksum(b []byte) uint32 {
	var acc uint32
	for i := 0; i+4 <= len(b); i += 4 {
		acc = bits.RotateLeft32(acc, 1) + binary.LittleEndian.Uint32(b[i:])
	}
	return acc
}

// Digest is a streaming form of Checksum
type Digest struct {
	acc     uint32
	partial [4]byte
	n       int // bytes held in partial
}

var _ hash.Hash32 = (*Digest)(nil)

// NewDigest creates a digest whose Sum32 matches Checksum over the bytes written
func NewDigest() *Digest {
	return &Digest{}
}

func (d *Digest) Write(p []byte) (int, error) {
	written := len(p)
	for d.n > 0 && len(p) > 0 {
		d.partial[d.n] = p[0]
		d.n++
		p = p[1:]
		if d.n == 4 {
			d.fold(binary.LittleEndian.Uint32(d.partial[:]))
			d.n = 0
		}
	}
	for len(p) >= 4 {
		d.fold(binary.LittleEndian.Uint32(p))
		p = p[4:]
	}
	if len(p) > 0 {
		d.n = copy(d.partial[:], p)
	}
	return written, nil
}

func (d *Digest) fold(word uint32) {
	d.acc = bits.RotateLeft32(d.acc, 1) + word
}

func (d *Digest) Sum32() uint32 {
	return d.acc
}

// Sum appends the big-endian checksum to b
func (d *Digest) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, d.acc)
}

func (d *Digest) Reset() {
	*d = Digest{}
}

func (d *Digest) Size() int      { return 4 }
func (d *Digest) BlockSize() int { return 4 }

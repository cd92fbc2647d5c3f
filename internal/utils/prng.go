package utils

import (
	"io"

	"github.com/zeebo/blake3"
)

// PRNG is a keyed, seekable pseudo-random byte stream built on BLAKE3's
// extendable output function. Two PRNGs built from the same key agree
// on every byte of the stream regardless of the order in which callers
// advance them — SetClock seeks directly to a block index, Clock
// advances by one block — so a given block can be reproduced from the
// key without replaying the whole history.
type PRNG struct {
	out   *blake3.OutputReader
	clock uint64
}

// NewKeyedPRNG builds a PRNG keyed by key, which must be 32 bytes long
// (blake3.NewKeyed returns an error for any other length).
func NewKeyedPRNG(key []byte) (*PRNG, error) {
	h, err := blake3.NewKeyed(key)
	if err != nil {
		return nil, err
	}
	out := h.Digest()
	return &PRNG{out: out}, nil
}

// SetClock seeks the stream to block index clock and fills buf with
// that block (len(buf) bytes, starting at offset clock*len(buf)).
func (p *PRNG) SetClock(buf []byte, clock uint64) {
	p.clock = clock
	p.seekAndFill(buf)
}

// Clock advances to the next block (of the same size as buf) and fills
// buf with it.
func (p *PRNG) Clock(buf []byte) {
	p.clock++
	p.seekAndFill(buf)
}

func (p *PRNG) seekAndFill(buf []byte) {
	if len(buf) == 0 {
		return
	}
	offset := int64(p.clock) * int64(len(buf))
	if _, err := p.out.Seek(offset, io.SeekStart); err != nil {
		panic("utils: PRNG seek failed: " + err.Error())
	}
	if _, err := io.ReadFull(p.out, buf); err != nil {
		panic("utils: PRNG read failed: " + err.Error())
	}
}

// Uint64 returns the next 8 bytes of the stream, read from the current
// stream position (which SetClock and Clock move), as a little-endian
// uint64. It does not change the block clock. Used to draw a fresh
// 64-bit value per call without needing the caller to manage a byte
// buffer.
func (p *PRNG) Uint64() uint64 {
	var buf [8]byte
	if _, err := io.ReadFull(p.out, buf[:]); err != nil {
		panic("utils: PRNG read failed: " + err.Error())
	}
	return uint64(buf[0]) | uint64(buf[1])<<8 | uint64(buf[2])<<16 | uint64(buf[3])<<24 |
		uint64(buf[4])<<32 | uint64(buf[5])<<40 | uint64(buf[6])<<48 | uint64(buf[7])<<56
}

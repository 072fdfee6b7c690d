package encoding

import (
	"image/color"
)

// Pixel is the decoded form of a single grid cell.
//
// On the wire (well, in the image) a cell is an RGBA64 split via
//
//	R [16 bits]
//	  16-9 [8 bits] unused
//	   8-1 [8 bits] -> kind of the first occupant
//	G [16 bits]
//	B [16 bits]
//	  32-1 [32 bits] -> occupant index, G holds the significant bits
//	A [16 bits]
//	  16-9 [8 bits] -> classification id
//	   8-1 [8 bits] -> flag bitmap
type Pixel struct {
	Kind  uint8
	Index uint32
	Class uint8
	Flags uint8
}

// Encode packs a Pixel into a colour suitable for an image.RGBA64
func Encode(p Pixel) color.RGBA64 {
	g, b := Split32(p.Index)
	return color.RGBA64{R: Merge8(0, p.Kind), G: g, B: b, A: Merge8(p.Class, p.Flags)}
}

// Decode is the inverse of Encode
func Decode(c color.RGBA64) Pixel {
	_, kind := Split16(c.R)
	class, flags := Split16(c.A)
	return Pixel{Kind: kind, Index: Merge16(c.G, c.B), Class: class, Flags: flags}
}

// FromBytes8 turns a bitmap's backing []byte into a uint8.
// Only the first byte is considered.
func FromBytes8(data []byte) uint8 {
	if len(data) == 0 {
		return 0
	}
	return data[0]
}

// ToBytes8 turns uint8 into []byte of len 1 (eg. 8 bits)
func ToBytes8(in uint8) []byte {
	return []byte{in}
}

// Split32 uint32 to two uint16
func Split32(in uint32) (uint16, uint16) {
	return uint16(in >> 16), uint16(in)
}

// Merge16 two uint16 to uint32
func Merge16(a, b uint16) uint32 {
	return (uint32(a) << 16) + uint32(b)
}

// Split16 uint16 to two uint8
func Split16(in uint16) (uint8, uint8) {
	return uint8(in >> 8), uint8(in)
}

// Merge8 two uint8 to uint16
func Merge8(a, b uint8) uint16 {
	return (uint16(a) << 8) + uint16(b)
}

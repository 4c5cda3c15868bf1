package region

import "encoding/binary"

// PackU16 writes v into dest[0:2] in little-endian order, byte-wise so
// it never faults on a host that traps on unaligned word access.
func PackU16(dest []byte, v uint16) {
	binary.LittleEndian.PutUint16(dest, v)
}

// UnpackU16 is the inverse of PackU16.
func UnpackU16(src []byte) uint16 {
	return binary.LittleEndian.Uint16(src)
}

package u8scan

import "encoding/binary"

// useFastASCII enables the word-at-a-time ASCII run detection used when
// counting characters. Tests flip it to compare against the scalar path.
var useFastASCII = true

const highBits = 0x8080808080808080

// asciiRun returns the number of leading bytes of src below 0x80.
// It checks eight bytes per step and finishes byte by byte.
func asciiRun(src []byte) int {
	n := 0
	for len(src)-n >= 8 {
		if binary.LittleEndian.Uint64(src[n:])&highBits != 0 {
			break
		}
		n += 8
	}
	for n < len(src) && src[n] < 0x80 {
		n++
	}
	return n
}

// Kernel returns the name of the implementation used to count characters.
func Kernel() string {
	if useFastASCII {
		return "swar"
	}
	return "generic"
}

package u8scan

// BOM is the UTF-8 encoding of U+FEFF, the byte order mark.
const BOM = "\xEF\xBB\xBF"

const bomSize = len(BOM)

// DetectBOM reports whether src starts with a UTF-8 byte order mark.
func DetectBOM(src []byte) BOMInfo {
	if len(src) >= bomSize && src[0] == 0xEF && src[1] == 0xBB && src[2] == 0xBF {
		return BOMInfo{Found: true, Size: bomSize}
	}
	return BOMInfo{}
}

// HasBOM reports whether src starts with a UTF-8 byte order mark.
func HasBOM(src []byte) bool {
	return DetectBOM(src).Found
}

// bomPrefix reports whether src is a proper prefix of the BOM, meaning a
// streaming caller cannot decide yet.
func bomPrefix(src []byte) bool {
	if len(src) >= bomSize {
		return false
	}
	for i, b := range src {
		if b != BOM[i] {
			return false
		}
	}
	return true
}

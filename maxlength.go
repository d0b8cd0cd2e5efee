package u8scan

// MaxQuotedLength returns the maximum possible length of Quote output for
// an input of length bytes.
func MaxQuotedLength(length int) int {
	return length*2 + // every byte escaped
		2 // delimiters
}

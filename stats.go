package u8scan

// Stats describes a completed or ongoing stream scan.
type Stats struct {
	BytesConsumed int64 // input bytes processed, including a BOM
	BytesProduced int64 // output bytes written
	Chars         int64 // characters passed to the Processor
	Invalid       int64 // of which invalid
	BOM           bool  // a leading BOM was found
	Stopped       bool  // the scan ended early through ActionStop or the output cap
}

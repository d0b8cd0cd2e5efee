package u8scan

// Action is what a scan does with one character.
type Action int

const (
	ActionCopy    Action = iota // append the original bytes
	ActionReplace               // append Result.Replacement instead
	ActionIgnore                // append nothing
	ActionStop                  // end the scan, keeping the output so far
)

// Result is a Processor's decision for one character.
type Result struct {
	Action      Action
	Replacement []byte // used with ActionReplace; may be empty
}

// Shorthands for the Results that carry no replacement. They are values
// meant to be returned from a Processor, not modified.
var (
	Keep = Result{Action: ActionCopy}   // copy the character
	Drop = Result{Action: ActionIgnore} // write nothing for the character
	Stop = Result{Action: ActionStop}   // end the scan before the character
)

// Replace returns a Result that writes b in place of the character.
func Replace(b []byte) Result {
	return Result{Action: ActionReplace, Replacement: b}
}

// ReplaceString is Replace for a string.
func ReplaceString(s string) Result {
	return Replace([]byte(s))
}

// Processor decides the fate of each character during a scan. raw holds the
// character's original bytes and is only valid during the call.
//
// A panic in a Processor propagates to the caller of the scan.
type Processor func(c Char, raw []byte) Result

// ScanUTF8 runs p over every character of src and returns the output it
// builds. A leading BOM is dropped without being passed to p.
func ScanUTF8(src []byte, p Processor) []byte {
	return Scan(src, p)
}

// ScanASCII runs p over every byte of src as its own character. It does not
// decode UTF-8 and does not look for a BOM.
func ScanASCII(src []byte, p Processor) []byte {
	s := newScanner(p, []Option{WithMode(ModeASCII)})
	s.state = StateScanning
	out, _ := s.scan(nil, src, true)
	return out
}

// ScanASCIIMax is ScanASCII with the output truncated to maxOutput bytes
// when maxOutput is positive.
func ScanASCIIMax(src []byte, p Processor, maxOutput int) []byte {
	out := ScanASCII(src, p)
	if maxOutput > 0 && len(out) > maxOutput {
		out = out[:maxOutput]
	}
	return out
}

// Scan is the configurable form of ScanUTF8. It honours WithMode,
// WithoutValidation, WithBOMAction, WithBOMHandler and WithMaxOutput.
func Scan(src []byte, p Processor, opts ...Option) []byte {
	s := newScanner(p, opts)
	out, _ := s.scan(nil, src, true)
	return out
}

// scanner is the scan state machine. It is fed whole buffers by Scan and
// consecutive chunks by Decoder and the Transformer.
type scanner struct {
	cfg   config
	p     Processor
	state State

	offset   int // stream offset of the next unconsumed byte
	produced int

	chars   int
	invalid int
	bom     bool
}

func newScanner(p Processor, opts []Option) *scanner {
	return &scanner{cfg: newConfig(opts), p: p}
}

func (s *scanner) reset() {
	*s = scanner{cfg: s.cfg, p: s.p}
}

// scan processes src, appending output to dst. It returns the extended dst
// and how many bytes of src were consumed. Unless atEOF, it stops before a
// character that may continue past src, or a BOM that is not complete yet,
// and the caller must present those bytes again with more data.
func (s *scanner) scan(dst, src []byte, atEOF bool) ([]byte, int) {
	base := len(dst)
	defer func() {
		s.produced += len(dst) - base
	}()

	pos := 0

	switch s.state {
	case StateStopped:
		return dst, 0
	case StateBOM:
		if !atEOF && bomPrefix(src) {
			return dst, 0
		}
		if bom := DetectBOM(src); bom.Found {
			s.bom = true
			switch s.cfg.bomAction {
			case BOMCopy:
				dst = append(dst, src[:bom.Size]...)
			case BOMCustom:
				if s.cfg.bomHandler != nil {
					dst = append(dst, s.cfg.bomHandler(bom, src[:bom.Size])...)
				}
			}
			pos = bom.Size
		}
		s.state = StateScanning
	}

	for pos < len(src) {
		if s.cfg.maxOutput > 0 && s.produced+len(dst)-base >= s.cfg.maxOutput {
			s.state = StateStopped
			break
		}
		if !atEOF && incomplete(src, pos, s.cfg.mode, s.cfg.validate) {
			break
		}

		c := Decode(src, pos, s.cfg.mode, s.cfg.validate)
		raw := src[pos : pos+c.Size]
		c.Start += s.offset

		s.chars++
		if !c.Valid {
			s.invalid++
		}

		res := s.p(c, raw)
		switch res.Action {
		case ActionReplace:
			dst = append(dst, res.Replacement...)
		case ActionIgnore:
		case ActionStop:
			s.state = StateStopped
			s.offset += pos
			return dst, pos
		default:
			dst = append(dst, raw...)
		}

		pos += c.Size
	}

	s.offset += pos
	return dst, pos
}

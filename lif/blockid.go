package lif

const (
	BlockIdDigits = 4
)

// Read the 4 digit block id that follows a marker. It's stored the same way as
// the marker (one padding byte before each ascii digit), so this always eats
// exactly 8 bytes. Digits aren't validated: garbage in just gives a garbage
// (wrapped) number, which ends up in the file name.
func ParseBlockId(src *ByteSource) (uint16, error) {
	var value uint16
	for n := 0; n < BlockIdDigits; n++ {
		if _, err := src.NextByte(); err != nil {
			return 0, err
		}
		digit, err := src.NextByte()
		if err != nil {
			return 0, err
		}
		value *= 10
		value += uint16(digit) - '0'
	}
	return value, nil
}

package chip8

// Memory geometry. Programs are loaded at MemStart and memory ends at
// MemTop, which bounds the size of any assembled binary.
const (
	MemStart  = 0x200 // Load address of the first program byte.
	MemTop    = 0x1000
	MaxBinary = MemTop - MemStart
)

// Register is a general purpose register index, V0 through VF.
type Register uint8

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// Valid returns true if the register index is within V0-VF.
func (r Register) Valid() bool {
	return r < NumRegisters
}

// String returns the conventional name of the register, e.g. "V3".
func (r Register) String() string {
	const digits = "0123456789ABCDEF"
	if !r.Valid() {
		return "V?"
	}
	return "V" + string(digits[r])
}

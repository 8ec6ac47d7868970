// internal/packet/constants.go
package packet

// Wire layout of the 26-byte control frame.
// These values define the protocol and MUST NOT be configurable.

// Length is the size of every control frame in bytes.
const Length = 26

// ---- BYTE POSITIONS ----

const (
	idxCounter      = 7  // rolling frame counter, previous + 1 mod 256
	idxDiffChecksum = 10 // checksum over the byte-wise diff against the previous frame

	idxThrottle = 14
	idxRudder   = 15
	idxElevator = 16
	idxAileron  = 17

	idxThrottleTrim = 18
	idxAileronTrim  = 19
	idxElevatorTrim = 20
	idxRudderTrim   = 21

	idxFlagsA = 22
	idxFlagsB = 23
	idxFlagsC = 24

	idxChecksum = 25 // 7-bit sum over the command bytes

	// First and last+1 byte covered by the 7-bit command checksum.
	cmdChecksumFrom = 13
	cmdChecksumTo   = 25
)

// ---- FLAG BITS ----

// Byte 22. Bit 0 ("hight") is always clear.
const (
	flagAHeadless  = 1 << 1
	flagAHighSpeed = 1 << 2
	flagAFlip      = 1 << 3
	flagAEngine    = 1 << 4
	flagALand      = 1 << 5
	flagATakeoff   = 1 << 6
)

// Byte 23. Bit 2 ("middle speed") and bit 4 ("control type") are always clear.
const (
	flagBReturnHome    = 1 << 0
	flagBEmergencyStop = 1 << 1
	flagBUpwardEvasion = 1 << 3
)

// Byte 24.
const flagCLights = 1 << 0

// ---- PRODUCT TYPE ----

// productType is a fixed 2-bit identifier occupying bits 5-6 of byte 23.
const (
	productType      = 1
	productTypeShift = 5
)

package models

// RGBA is a validated 8-bit colour with alpha.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Recovery levels accepted by the QR spec, weakest to strongest.
// They map onto the encoder's L, M, Q and H error-correction levels.
const (
	RecoveryLow     = "low"
	RecoveryMedium  = "medium"
	RecoveryHigh    = "high"
	RecoveryHighest = "highest"
)

// MaxQRPayloadBytes is the alphanumeric-mode capacity of a version-40 QR code
// at the lowest error-correction level.
const MaxQRPayloadBytes = 4296

// QRSpec is a fully validated QR generation request. Zero values of
// RecoveryLevel, Size and TrimWidth stand in for medium recovery, one pixel
// per module and no quiet-zone trim. A zero RGBA is transparent black, so the
// black-on-white colour defaults are filled in by ParseSpec.
type QRSpec struct {
	// Payload is the text to encode, 1..MaxQRPayloadBytes bytes
	Payload string `json:"payload"`

	// RecoveryLevel is one of the Recovery* constants
	RecoveryLevel string `json:"recovery_level"`

	// Size is the requested image width in pixels; 0 means one pixel
	// per module
	Size int `json:"size"`

	// Foreground paints dark modules
	Foreground RGBA `json:"foreground_colour"`

	// Background paints light modules and the quiet zone
	Background RGBA `json:"background_colour"`

	// TrimWidth is the number of quiet-zone modules to crop from each side
	TrimWidth int `json:"trim_width"`
}

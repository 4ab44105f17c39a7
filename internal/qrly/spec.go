package qrly

import (
	"fmt"
	"math"

	"github.com/tidwall/gjson"

	"github.com/certograph/harness/internal/models"
)

// ParseSpec validates a JSON generation request and resolves defaults.
// Validation is strict: a missing required field, a wrong type, or an
// out-of-range value rejects the whole request.
func ParseSpec(body []byte) (models.QRSpec, error) {
	spec := models.QRSpec{
		RecoveryLevel: models.RecoveryMedium,
		Foreground:    models.RGBA{R: 0, G: 0, B: 0, A: 255},
		Background:    models.RGBA{R: 255, G: 255, B: 255, A: 255},
	}

	if !gjson.ValidBytes(body) {
		return spec, fmt.Errorf("request body is not valid JSON")
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return spec, fmt.Errorf("request body must be a JSON object")
	}

	payload := doc.Get("payload")
	if !payload.Exists() || payload.Type != gjson.String {
		return spec, fmt.Errorf("payload is required and must be a string")
	}
	if len(payload.Str) == 0 {
		return spec, fmt.Errorf("payload must not be empty")
	}
	if len(payload.Str) > models.MaxQRPayloadBytes {
		return spec, fmt.Errorf("payload exceeds the maximum length of %d bytes", models.MaxQRPayloadBytes)
	}
	spec.Payload = payload.Str

	if level := doc.Get("recovery_level"); level.Exists() {
		switch level.Str {
		case models.RecoveryLow, models.RecoveryMedium, models.RecoveryHigh, models.RecoveryHighest:
			spec.RecoveryLevel = level.Str
		default:
			return spec, fmt.Errorf("recovery_level must be one of low, medium, high, highest")
		}
	}

	if size := doc.Get("size"); size.Exists() {
		n, err := intValue(size)
		if err != nil {
			return spec, fmt.Errorf("size must be an integer")
		}
		if n <= 0 {
			return spec, fmt.Errorf("size must be greater than zero")
		}
		spec.Size = n
	}

	if fg := doc.Get("foreground_colour"); fg.Exists() {
		colour, err := parseColour("foreground_colour", fg)
		if err != nil {
			return spec, err
		}
		spec.Foreground = colour
	}

	if bg := doc.Get("background_colour"); bg.Exists() {
		colour, err := parseColour("background_colour", bg)
		if err != nil {
			return spec, err
		}
		spec.Background = colour
	}

	if trim := doc.Get("trim_width"); trim.Exists() {
		n, err := intValue(trim)
		if err != nil {
			return spec, fmt.Errorf("trim_width must be an integer")
		}
		if n < 0 {
			return spec, fmt.Errorf("trim_width must not be negative")
		}
		spec.TrimWidth = n
	}

	return spec, nil
}

// parseColour validates an RGBA object. All four components are required and
// each must be an integer in [0, 255].
func parseColour(field string, value gjson.Result) (models.RGBA, error) {
	if !value.IsObject() {
		return models.RGBA{}, fmt.Errorf("%s must be an object with r, g, b and a components", field)
	}
	components := [4]string{"r", "g", "b", "a"}
	var parsed [4]uint8
	for i, name := range components {
		component := value.Get(name)
		if !component.Exists() {
			return models.RGBA{}, fmt.Errorf("%s is missing the %s component", field, name)
		}
		n, err := intValue(component)
		if err != nil || n < 0 || n > 255 {
			return models.RGBA{}, fmt.Errorf("%s component %s must be an integer in [0, 255]", field, name)
		}
		parsed[i] = uint8(n)
	}
	return models.RGBA{R: parsed[0], G: parsed[1], B: parsed[2], A: parsed[3]}, nil
}

// intValue extracts a JSON number as an integer, rejecting non-numbers and
// fractional values.
func intValue(value gjson.Result) (int, error) {
	if value.Type != gjson.Number {
		return 0, fmt.Errorf("not a number")
	}
	if value.Num != math.Trunc(value.Num) {
		return 0, fmt.Errorf("not an integer")
	}
	return int(value.Num), nil
}

package responder

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/certograph/harness/internal/models"
)

// header is a decoded "Name: Value" pair from the headers directive.
type header struct {
	name  string
	value string
}

// requestParams carries the wire-shaped ParamSet plus the decoded artifacts
// the synthesizer needs (response body bytes, response headers, expected
// header names).
type requestParams struct {
	set models.ParamSet

	// responseBody is the decoded body directive; valid only when hasBody
	responseBody []byte
	hasBody      bool

	// responseHeaders are the decoded headers directive entries
	responseHeaders []header

	// expectedNames are the decoded expected_headers names; nil when the
	// directive was absent
	expectedNames []string
}

// parseParams decodes the raw query string into the directive set.
// Unknown keys are ignored. Duplicate keys: last occurrence wins.
// Values are percent-decoded without treating '+' as a space so that raw
// base64 text survives the trip.
func parseParams(rawQuery string) (*requestParams, error) {
	values, err := splitQuery(rawQuery)
	if err != nil {
		return nil, err
	}

	p := &requestParams{}

	if v, ok := values["status_code"]; ok {
		code, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid status_code: %q is not an integer", v)
		}
		p.set.StatusCode = &code
	}

	if v, ok := values["delay"]; ok {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid delay: %q is not an integer", v)
		}
		p.set.Delay = &ms
	}

	if v, ok := values["random_delay"]; ok && v != "" {
		rd, err := parseRandomDelay(v)
		if err != nil {
			return nil, err
		}
		p.set.RandomDelay = rd
	}

	if _, ok := values["no_body"]; ok {
		p.set.NoBody = true
	}

	if _, ok := values["no_headers"]; ok {
		p.set.NoHeaders = true
	}

	if v, ok := values["headers"]; ok {
		hdrs, err := parseHeaderList(v)
		if err != nil {
			return nil, err
		}
		p.responseHeaders = hdrs
		for _, h := range hdrs {
			p.set.Headers = append(p.set.Headers, h.name+": "+h.value)
		}
	}

	if v, ok := values["body"]; ok {
		decoded, err := base64.StdEncoding.DecodeString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid body: not valid base64: %v", err)
		}
		p.responseBody = decoded
		p.hasBody = true
		p.set.Body = v
	}

	if v, ok := values["expected_headers"]; ok {
		names, err := parseNameList(v)
		if err != nil {
			return nil, err
		}
		p.expectedNames = names
		p.set.ExpectedHeaders = names
	}

	return p, nil
}

// splitQuery breaks a raw query string into key/value pairs. A key without
// '=' maps to the empty value, which marks bare flags like no_body.
func splitQuery(rawQuery string) (map[string]string, error) {
	values := make(map[string]string)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key, err := url.PathUnescape(key)
		if err != nil {
			return nil, fmt.Errorf("malformed query string: %v", err)
		}
		value, err = url.PathUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("malformed query string: %v", err)
		}
		values[key] = value
	}
	return values, nil
}

// parseRandomDelay parses a "min,max" millisecond range.
func parseRandomDelay(v string) (models.RandomDelay, error) {
	minPart, maxPart, ok := strings.Cut(v, ",")
	if !ok {
		return models.RandomDelay{}, fmt.Errorf("invalid random_delay: %q is not of the form min,max", v)
	}
	min, err := strconv.Atoi(minPart)
	if err != nil {
		return models.RandomDelay{}, fmt.Errorf("invalid random_delay: %q is not an integer", minPart)
	}
	max, err := strconv.Atoi(maxPart)
	if err != nil {
		return models.RandomDelay{}, fmt.Errorf("invalid random_delay: %q is not an integer", maxPart)
	}
	if min > max {
		return models.RandomDelay{}, fmt.Errorf("invalid random_delay: min %d exceeds max %d", min, max)
	}
	return models.RandomDelay{Min: &min, Max: &max}, nil
}

// parseHeaderList decodes a CSV of base64("Name: Value") entries.
func parseHeaderList(csv string) ([]header, error) {
	var headers []header
	for _, item := range splitCSV(csv) {
		decoded, err := base64.StdEncoding.DecodeString(item)
		if err != nil {
			return nil, fmt.Errorf("invalid headers entry: not valid base64: %v", err)
		}
		name, value, ok := strings.Cut(string(decoded), ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid headers entry: %q is not of the form \"Name: Value\"", decoded)
		}
		headers = append(headers, header{name: name, value: strings.TrimLeft(value, " ")})
	}
	return headers, nil
}

// parseNameList decodes a CSV of base64("Name") entries. An empty CSV yields
// an empty, non-nil list so that presence is preserved.
func parseNameList(csv string) ([]string, error) {
	names := []string{}
	for _, item := range splitCSV(csv) {
		decoded, err := base64.StdEncoding.DecodeString(item)
		if err != nil {
			return nil, fmt.Errorf("invalid expected_headers entry: not valid base64: %v", err)
		}
		names = append(names, string(decoded))
	}
	return names, nil
}

func splitCSV(csv string) []string {
	if csv == "" {
		return nil
	}
	return strings.Split(csv, ",")
}

package responder

import "net/http"

// findHeaders resolves the expected_headers directive against the request
// headers. Names match case-sensitively against the header names as the
// server stored them. Every listed name that is present contributes exactly
// one "Name: Value" entry, carrying the first request value for that name.
//
// Nil expected means the directive was absent and yields nil, so the echo
// record serialises found_headers as null. An empty list yields an empty
// list.
func findHeaders(reqHeaders http.Header, expected []string) []string {
	if expected == nil {
		return nil
	}
	found := []string{}
	for _, name := range expected {
		values, ok := reqHeaders[name]
		if !ok || len(values) == 0 {
			continue
		}
		found = append(found, name+": "+values[0])
	}
	return found
}

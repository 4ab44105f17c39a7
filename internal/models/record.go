package models

// RequestRecord is the echo record ResponderAPI returns as the default
// response body. It describes the request exactly as the server observed it
// on the wire.
type RequestRecord struct {
	// Protocol is the HTTP protocol version as received (e.g. "HTTP/1.1")
	Protocol string `json:"protocol"`

	// Method is the HTTP verb of the request
	Method string `json:"method"`

	// UserAgent is the request's User-Agent header value, possibly empty
	UserAgent string `json:"user_agent"`

	// ClientAddress is the remote peer address of the connection
	ClientAddress string `json:"client_address"`

	// Host is the Host header value
	Host string `json:"host"`

	// URLPath is the raw request-target verbatim, including the query string
	// Example: "/blog/page/143285?status_code=402"
	URLPath string `json:"url_path"`

	// ContentType is the request's Content-Type header, empty if absent
	ContentType string `json:"content_type"`

	// ContentLength is the exact byte length of the request body
	ContentLength int `json:"content_length"`

	// RequestBody is the request body bytes, standard base64 with padding
	RequestBody string `json:"request_body"`

	// FoundHeaders lists the request headers matched by expected_headers,
	// formatted "Name: Value". Nil (serialised as null) when expected_headers
	// was not given; an empty list when it was given but matched nothing.
	FoundHeaders []string `json:"found_headers"`

	// Params is the parsed query-string directive set
	Params ParamSet `json:"params"`

	// ResponderAPIID is the per-request correlation identifier
	ResponderAPIID string `json:"responderapi_id"`

	// CalledAt is the receipt timestamp, UTC with microsecond precision
	// Example: "2024-09-11T15:51:05.809722Z"
	CalledAt string `json:"called_at"`

	// ExecutionTime is the human-readable time spent serving the request
	ExecutionTime string `json:"execution_time"`
}

// ParamSet is the typed form of the recognized query-string directives.
// Directives the client did not send are omitted from the JSON encoding,
// except random_delay which always serialises (as {} when unset).
type ParamSet struct {
	// StatusCode overrides the response status (default 200)
	StatusCode *int `json:"status_code,omitempty"`

	// Delay is a fixed pre-response delay in milliseconds
	Delay *int `json:"delay,omitempty"`

	// RandomDelay is a uniform pre-response delay range in milliseconds
	RandomDelay RandomDelay `json:"random_delay"`

	// NoBody suppresses the response body entirely
	NoBody bool `json:"no_body,omitempty"`

	// NoHeaders suppresses the headers the headers directive would add
	NoHeaders bool `json:"no_headers,omitempty"`

	// Headers holds the decoded "Name: Value" response headers to add
	Headers []string `json:"headers,omitempty"`

	// Body holds the base64 response body text as received
	Body string `json:"body,omitempty"`

	// ExpectedHeaders holds the decoded request header names to look for
	ExpectedHeaders []string `json:"expected_headers,omitempty"`
}

// RandomDelay is the parsed random_delay range. Both bounds are nil when the
// directive was recognized but given no value.
type RandomDelay struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// IsSet reports whether the range carries usable bounds.
func (d RandomDelay) IsSet() bool {
	return d.Min != nil && d.Max != nil
}

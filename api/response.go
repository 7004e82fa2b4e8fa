package api

import "encoding/json"

// StatusField is the key the dispatcher injects into decoded JSON objects
// to carry the HTTP status code alongside the service's own fields.
const StatusField = "http_response_code"

// Response is the normalized result of one dispatched command. Exactly one
// of Decoded, List or Raw is set:
//
//   - Decoded: the body was a JSON object (StatusField injected), or the
//     call failed at the HTTP level and Decoded holds only StatusField.
//   - List: the body was a JSON array (Revisions, Search, ListLinks).
//   - Raw: the body was not JSON; file downloads and thumbnails land here
//     byte-for-byte.
type Response struct {
	Code    int
	Decoded map[string]any
	List    []any
	Raw     []byte
}

// IsJSON reports whether the body decoded as structured JSON.
func (r *Response) IsJSON() bool { return r.Decoded != nil || r.List != nil }

// OK reports whether the HTTP status was in the 2xx range.
func (r *Response) OK() bool { return r.Code >= 200 && r.Code <= 299 }

// normalizeResponse maps a status code and body to the Response variants
// described above. Non-2xx or empty bodies reduce to the status code only;
// the services put nothing trustworthy in error bodies.
func normalizeResponse(code int, body []byte) *Response {
	r := &Response{Code: code}
	if code < 200 || code > 299 || len(body) == 0 {
		r.Decoded = map[string]any{StatusField: code}
		return r
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		r.Raw = body
		return r
	}
	switch v := v.(type) {
	case map[string]any:
		v[StatusField] = code
		r.Decoded = v
	case []any:
		r.List = v
	default:
		// Scalar JSON never occurs in the documented API; treat it as an
		// opaque body rather than inventing a wrapper object.
		r.Raw = body
	}
	return r
}

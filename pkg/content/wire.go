package content

// put adds key to m unless v is an absent value. The platform treats a
// missing key as "not set" and rejects explicit nulls and empty arrays, so
// empty strings, nil pointers, false booleans and empty collections are
// never emitted. Enum fields are converted to their wire strings by the
// callers.
func put(m map[string]any, key string, v any) {
	switch t := v.(type) {
	case nil:
		return
	case string:
		if t == "" {
			return
		}
	case *bool:
		if t == nil {
			return
		}
		m[key] = *t
		return
	case bool:
		if !t {
			return
		}
	case float64:
		if t == 0 {
			return
		}
	case []any:
		if len(t) == 0 {
			return
		}
	case map[string]any:
		if len(t) == 0 {
			return
		}
	}
	m[key] = v
}

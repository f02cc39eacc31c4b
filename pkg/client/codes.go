package client

// catalogEntry is one row of the platform's published error code table, used
// to fill in messages when an error response carries only a code.
type catalogEntry struct {
	message     string
	longMessage string
}

var apiErrorCatalog = map[int]catalogEntry{
	40000: {"Request validation failed", "The request payload does not pass required validation"},
	40001: {"Invalid Request", "The request was invalid"},
	40003: {"Invalid Scope", "An invalid or insufficient scope was used"},
	40008: {"Unprocessable Entity", "The JSON payload was malformed"},
	40009: {"Error in SSN", "The request can't be processed due to SSN not meeting the required format"},
	40012: {"Error in type", "The request can't be processed due to type field failing extended validation"},
	40100: {"Unauthorized", "The request requires authentication"},
	40101: {"Invalid Token", "The access token is invalid or has expired"},
	40300: {"Forbidden", "The authenticated client may not perform this action"},
	40400: {"Not Found", "The requested resource does not exist"},
	40500: {"Method Not Allowed", "The HTTP method is not supported for this resource"},
	42900: {"Too Many Requests", "The client has sent too many requests in a given amount of time"},
}

// catalogLookup resolves a platform error code to its published messages.
func catalogLookup(code int) (catalogEntry, bool) {
	e, ok := apiErrorCatalog[code]
	return e, ok
}

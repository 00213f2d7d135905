package kinderr

// Built-in kinds covering the common HTTP-status-like codes.
// Applications are expected to define their own kinds for domain errors;
// these exist as defaults and as reconstruction targets for the boundary
// packages (herr, gerr, cerr) when an error arrives without a kind.
//
// Message IDs follow "MSG{code}", except InternalServerError which keeps
// the historical "MSG000".
var (
	BadRequest          = NewKind("BadRequest", "MSG400", 400, "Bad Request")
	Unauthorized        = NewKind("Unauthorized", "MSG401", 401, "Unauthorized")
	Forbidden           = NewKind("Forbidden", "MSG403", 403, "Forbidden")
	NotFound            = NewKind("NotFound", "MSG404", 404, "Not Found")
	Conflict            = NewKind("Conflict", "MSG409", 409, "Conflict")
	PreconditionFailed  = NewKind("PreconditionFailed", "MSG412", 412, "Precondition Failed")
	TooManyRequests     = NewKind("TooManyRequests", "MSG429", 429, "Too Many Requests")
	Canceled            = NewKind("Canceled", "MSG499", 499, "Client Closed Request")
	InternalServerError = NewKind("InternalServerError", "MSG000", 500, "Internal Server Error")
	NotImplemented      = NewKind("NotImplemented", "MSG501", 501, "Not Implemented")
	ServiceUnavailable  = NewKind("ServiceUnavailable", "MSG503", 503, "Service Unavailable")
	GatewayTimeout      = NewKind("GatewayTimeout", "MSG504", 504, "Gateway Timeout")
)

package cerr

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
	"google.golang.org/genproto/googleapis/rpc/errdetails"

	"github.com/mickamy/kinderr"
)

// CodeOfKind maps a kind's HTTP-status-like code to a connect.Code.
// Codes without a direct mapping fall back by side: client kinds to
// CodeInvalidArgument, server kinds to CodeInternal.
func CodeOfKind(k kinderr.Kind) connect.Code {
	if cc, ok := kindCodeToConnect[k.Code()]; ok {
		return cc
	}
	if k.Side() == kinderr.SideClient {
		return connect.CodeInvalidArgument
	}
	return connect.CodeInternal
}

// KindOfCode maps a connect.Code back to a built-in kind.
func KindOfCode(c connect.Code) kinderr.Kind {
	if k, ok := connectToKind[c]; ok {
		return k
	}
	return kinderr.InternalServerError
}

// ToConnectError normalizes an error and converts it to a *connect.Error.
// As in gerr, an ErrorInfo detail carries the taxonomy identity: Reason
// holds the message ID, Domain holds the class, Metadata the flattened
// details. Returns nil if err is nil.
func ToConnectError(err error) *connect.Error {
	if err == nil {
		return nil
	}
	e := kinderr.Normalize(err)
	ce := connect.NewError(CodeOfKind(e.Kind()), errMessage(e.Message()))

	info := &errdetails.ErrorInfo{
		Reason:   e.Kind().MessageID(),
		Domain:   e.Class(),
		Metadata: flattenDetails(e.Details()),
	}
	if detail, detailErr := connect.NewErrorDetail(info); detailErr == nil {
		ce.AddDetail(detail)
	}
	return ce
}

// FromConnectError converts a *connect.Error back to a canonical error.
// Returns nil if err is nil. The kind is rebuilt from the Connect code;
// class, message ID, and details are restored from an ErrorInfo detail
// when present.
func FromConnectError(err *connect.Error) *kinderr.Error {
	if err == nil {
		return nil
	}
	kind := KindOfCode(err.Code())
	class := kinderr.ClassOf(kind, "Error")
	var details kinderr.Details

	for _, d := range err.Details() {
		msg, valueErr := d.Value()
		if valueErr != nil {
			continue
		}
		info, ok := msg.(*errdetails.ErrorInfo)
		if !ok {
			continue
		}
		if info.GetDomain() != "" {
			class = info.GetDomain()
		}
		if info.GetReason() != "" {
			// Reason carries the original message ID; the code table alone
			// would substitute the built-in kind's ID.
			kind = kinderr.NewKind(kind.Name(), info.GetReason(), kind.Code(), kind.Description())
		}
		if meta := info.GetMetadata(); len(meta) > 0 {
			details = make(kinderr.Details, len(meta))
			for k, v := range meta {
				details[k] = v
			}
		}
		break
	}

	return kinderr.New(kind, class, err.Message(), details)
}

// flattenDetails converts structured details into the string-to-string
// metadata ErrorInfo requires. String values pass through; everything else
// is JSON-encoded.
func flattenDetails(d kinderr.Details) map[string]string {
	if len(d) == 0 {
		return nil
	}
	out := make(map[string]string, len(d))
	for k, v := range d {
		switch s := v.(type) {
		case string:
			out[k] = s
		default:
			b, err := json.Marshal(v)
			if err != nil {
				out[k] = fmt.Sprintf("%v", v)
				continue
			}
			out[k] = string(b)
		}
	}
	return out
}

// errMessage is a plain error wrapper so connect.NewError carries exactly
// the canonical message, not the display-formatted string.
type errMessage string

func (e errMessage) Error() string { return string(e) }

var kindCodeToConnect = map[uint16]connect.Code{
	400: connect.CodeInvalidArgument,
	401: connect.CodeUnauthenticated,
	403: connect.CodePermissionDenied,
	404: connect.CodeNotFound,
	408: connect.CodeDeadlineExceeded,
	409: connect.CodeAlreadyExists,
	412: connect.CodeFailedPrecondition,
	416: connect.CodeOutOfRange,
	429: connect.CodeResourceExhausted,
	499: connect.CodeCanceled,
	500: connect.CodeInternal,
	501: connect.CodeUnimplemented,
	503: connect.CodeUnavailable,
	504: connect.CodeDeadlineExceeded,
}

var connectToKind = map[connect.Code]kinderr.Kind{
	connect.CodeCanceled:           kinderr.Canceled,
	connect.CodeUnknown:            kinderr.InternalServerError,
	connect.CodeInvalidArgument:    kinderr.BadRequest,
	connect.CodeDeadlineExceeded:   kinderr.GatewayTimeout,
	connect.CodeNotFound:           kinderr.NotFound,
	connect.CodeAlreadyExists:      kinderr.Conflict,
	connect.CodePermissionDenied:   kinderr.Forbidden,
	connect.CodeResourceExhausted:  kinderr.TooManyRequests,
	connect.CodeFailedPrecondition: kinderr.PreconditionFailed,
	connect.CodeAborted:            kinderr.Conflict,
	connect.CodeOutOfRange:         kinderr.BadRequest,
	connect.CodeUnimplemented:      kinderr.NotImplemented,
	connect.CodeInternal:           kinderr.InternalServerError,
	connect.CodeUnavailable:        kinderr.ServiceUnavailable,
	connect.CodeDataLoss:           kinderr.InternalServerError,
	connect.CodeUnauthenticated:    kinderr.Unauthorized,
}

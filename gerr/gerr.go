package gerr

import (
	"encoding/json"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"github.com/mickamy/kinderr"
)

// CodeOfKind maps a kind's HTTP-status-like code to a gRPC codes.Code.
// Codes without a direct mapping fall back by side: client kinds to
// InvalidArgument, server kinds to Internal.
func CodeOfKind(k kinderr.Kind) codes.Code {
	if gc, ok := kindCodeToGRPC[k.Code()]; ok {
		return gc
	}
	if k.Side() == kinderr.SideClient {
		return codes.InvalidArgument
	}
	return codes.Internal
}

// KindOfCode maps a gRPC codes.Code back to a built-in kind.
// codes.OK maps to the zero Kind.
func KindOfCode(c codes.Code) kinderr.Kind {
	if k, ok := grpcToKind[c]; ok {
		return k
	}
	return kinderr.InternalServerError
}

// ToStatus normalizes an error and converts it to a *status.Status.
// The canonical message becomes the status message, and an ErrorInfo detail
// carries the taxonomy identity across the wire: Reason holds the message ID,
// Domain holds the class, and Metadata holds the flattened details.
func ToStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	e := kinderr.Normalize(err)
	st := status.New(CodeOfKind(e.Kind()), e.Message())

	info := &errdetails.ErrorInfo{
		Reason:   e.Kind().MessageID(),
		Domain:   e.Class(),
		Metadata: flattenDetails(e.Details()),
	}
	if withDetails, detailErr := st.WithDetails(protoadapt.MessageV1Of(info)); detailErr == nil {
		st = withDetails
	}
	return st
}

// FromStatus converts a *status.Status back to a canonical error.
// Returns nil if the status code is OK. The kind is rebuilt from the status
// code; class, message ID, and details are restored from an ErrorInfo detail
// when present.
func FromStatus(st *status.Status) *kinderr.Error {
	if st.Code() == codes.OK {
		return nil
	}
	kind := KindOfCode(st.Code())
	class := kinderr.ClassOf(kind, "Error")
	var details kinderr.Details

	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
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
		details = expandDetails(info.GetMetadata())
		break
	}

	return kinderr.New(kind, class, st.Message(), details)
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

// expandDetails restores details from ErrorInfo metadata. Values stay
// strings; the flattening is lossy for non-string detail values.
func expandDetails(m map[string]string) kinderr.Details {
	if len(m) == 0 {
		return nil
	}
	out := make(kinderr.Details, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

var kindCodeToGRPC = map[uint16]codes.Code{
	400: codes.InvalidArgument,
	401: codes.Unauthenticated,
	403: codes.PermissionDenied,
	404: codes.NotFound,
	408: codes.DeadlineExceeded,
	409: codes.AlreadyExists,
	412: codes.FailedPrecondition,
	416: codes.OutOfRange,
	429: codes.ResourceExhausted,
	499: codes.Canceled,
	500: codes.Internal,
	501: codes.Unimplemented,
	503: codes.Unavailable,
	504: codes.DeadlineExceeded,
}

var grpcToKind = map[codes.Code]kinderr.Kind{
	codes.OK:                 {},
	codes.Canceled:           kinderr.Canceled,
	codes.Unknown:            kinderr.InternalServerError,
	codes.InvalidArgument:    kinderr.BadRequest,
	codes.DeadlineExceeded:   kinderr.GatewayTimeout,
	codes.NotFound:           kinderr.NotFound,
	codes.AlreadyExists:      kinderr.Conflict,
	codes.PermissionDenied:   kinderr.Forbidden,
	codes.ResourceExhausted:  kinderr.TooManyRequests,
	codes.FailedPrecondition: kinderr.PreconditionFailed,
	codes.Aborted:            kinderr.Conflict,
	codes.OutOfRange:         kinderr.BadRequest,
	codes.Unimplemented:      kinderr.NotImplemented,
	codes.Internal:           kinderr.InternalServerError,
	codes.Unavailable:        kinderr.ServiceUnavailable,
	codes.DataLoss:           kinderr.InternalServerError,
	codes.Unauthenticated:    kinderr.Unauthorized,
}

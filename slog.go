package kinderr

import "log/slog"

// LogValue implements slog.LogValuer, allowing *Error to be logged directly
// as a structured value. The kind's message ID, code, and side are included
// even though they never appear in serialized output; logs are in-process.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 6)
	attrs = append(attrs,
		slog.String("class", e.class),
		slog.String("message_id", e.kind.MessageID()),
		slog.Int("code", int(e.kind.Code())),
		slog.String("side", e.kind.Side().String()),
		slog.String("message", e.message),
	)
	if len(e.details) > 0 {
		attrs = append(attrs, slog.Any("details", e.details))
	}
	return slog.GroupValue(attrs...)
}

// SlogAttr builds a slog.Attr with key "error" from any error, normalizing
// it through [Normalize] first.
func SlogAttr(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Attr{Key: "error", Value: Normalize(err).LogValue()}
}

// Ensure *Error implements slog.LogValuer at compile time.
var _ slog.LogValuer = (*Error)(nil)

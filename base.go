package kinderr

import "fmt"

// ClassOf builds the classification string for a concrete error type:
// "{side}::{kind-name}::{type-name}".
func ClassOf(kind Kind, typeName string) string {
	return fmt.Sprintf("%s::%s::%s", kind.Side(), kind.Name(), typeName)
}

// Base is the common implementation behind concrete AsError types.
// A concrete error type embeds Base and supplies a constructor:
//
//	var KindIO = kinderr.NewKind("IoError", "Err-00001", 500, "I/O failure")
//
//	type ReadFailed struct{ kinderr.Base }
//
//	func NewReadFailed() ReadFailed {
//		return ReadFailed{kinderr.NewBase(KindIO, "ReadFailed")}
//	}
//
// SetMessage and SetDetails are builder-style: value receivers returning
// the modified Base, so instances stay independent.
type Base struct {
	kind    Kind
	class   string
	message string
	details Details
}

// NewBase creates a Base bound to the given kind. The class follows the
// ClassOf convention and the message defaults to the kind's description.
func NewBase(kind Kind, typeName string) Base {
	return Base{
		kind:    kind,
		class:   ClassOf(kind, typeName),
		message: kind.Description(),
	}
}

// Convert creates a Base that wraps a prior canonical error. The origin's
// details carry over, and its kind-stripped serialized form (class and
// message only) is recorded under the "origin" detail key.
func Convert(kind Kind, typeName string, origin *Error) Base {
	details := origin.Details()
	if details == nil {
		details = make(Details, 1)
	}
	details["origin"] = Details{
		"class":   origin.Class(),
		"message": origin.Message(),
	}
	return Base{
		kind:    kind,
		class:   ClassOf(kind, typeName),
		message: kind.Description(),
		details: details,
	}
}

// SetMessage returns a copy of the Base with the message replaced.
func (b Base) SetMessage(msg string) Base {
	b.message = msg
	return b
}

// SetDetails returns a copy of the Base with the details replaced.
func (b Base) SetDetails(d Details) Base {
	b.details = d.Clone()
	return b
}

// SetDetail returns a copy of the Base with a single detail key set.
func (b Base) SetDetail(key string, value any) Base {
	b.details = b.details.With(key, value)
	return b
}

// Kind implements AsError.
func (b Base) Kind() Kind { return b.kind }

// Class implements AsError.
func (b Base) Class() string { return b.class }

// Message implements AsError.
func (b Base) Message() string { return b.message }

// Details implements AsError. Returns a copy, or nil if there are none.
func (b Base) Details() Details { return b.details.Clone() }

// Error implements the error interface using the canonical display format.
func (b Base) Error() string {
	return fmt.Sprintf("[%s] %s (%d) - %s", b.kind.MessageID(), b.class, b.kind.Code(), b.message)
}

package kinderr

// Side classifies the provenance of a Kind: whether the error originates
// from the caller (client) or from the system itself (server).
type Side string

// String returns the string representation of the Side.
func (s Side) String() string { return string(s) }

const (
	// SideClient marks kinds whose numeric code is in [0, 499].
	SideClient Side = "Client"
	// SideServer marks kinds whose numeric code is 500 or higher.
	SideServer Side = "Server"
)

// Kind is an immutable category of error: a name, a stable message ID for
// catalogs and log correlation, an HTTP-status-like numeric code, and a
// default human-readable description.
//
// Kinds are meant to be defined once as package-level variables and shared
// freely; they are plain comparable values, so two kinds are equal iff all
// four fields match.
type Kind struct {
	name        string
	messageID   string
	code        uint16
	description string
}

// NewKind creates a Kind with the given name, message ID, numeric code,
// and description.
func NewKind(name, messageID string, code uint16, description string) Kind {
	return Kind{
		name:        name,
		messageID:   messageID,
		code:        code,
		description: description,
	}
}

// Name returns the kind's identifier, e.g. "NotFound".
func (k Kind) Name() string { return k.name }

// MessageID returns the kind's stable message ID, e.g. "MSG001".
func (k Kind) MessageID() string { return k.messageID }

// Code returns the kind's numeric code.
func (k Kind) Code() uint16 { return k.code }

// Description returns the kind's default human-readable text.
func (k Kind) Description() string { return k.description }

// Side classifies the kind by its code: [0, 499] is SideClient,
// 500 and above is SideServer.
func (k Kind) Side() Side {
	if k.code <= 499 {
		return SideClient
	}
	return SideServer
}

// IsZero reports whether the kind is the zero value (no fields set).
func (k Kind) IsZero() bool { return k == Kind{} }

package gerr_test

import (
	"errors"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mickamy/kinderr"
	"github.com/mickamy/kinderr/gerr"
)

func TestCodeOfKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind kinderr.Kind
		want codes.Code
	}{
		{"not found", kinderr.NotFound, codes.NotFound},
		{"unauthorized", kinderr.Unauthorized, codes.Unauthenticated},
		{"internal", kinderr.InternalServerError, codes.Internal},
		{"unavailable", kinderr.ServiceUnavailable, codes.Unavailable},
		{"unmapped client code", kinderr.NewKind("Weird", "MSG1", 42, "weird"), codes.InvalidArgument},
		{"unmapped server code", kinderr.NewKind("Weird", "MSG1", 9000, "weird"), codes.Internal},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := gerr.CodeOfKind(tt.kind); got != tt.want {
				t.Errorf("CodeOfKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToStatus(t *testing.T) {
	t.Parallel()

	t.Run("nil is OK", func(t *testing.T) {
		t.Parallel()
		st := gerr.ToStatus(nil)
		if st.Code() != codes.OK {
			t.Errorf("code = %v, want OK", st.Code())
		}
	})

	t.Run("taxonomy error", func(t *testing.T) {
		t.Parallel()
		err := kinderr.NewBase(kinderr.NotFound, "UserLookup").
			SetMessage("no such user").
			SetDetail("user_id", "42").
			SetDetail("attempts", 3)
		st := gerr.ToStatus(err)

		if st.Code() != codes.NotFound {
			t.Errorf("code = %v, want NotFound", st.Code())
		}
		if st.Message() != "no such user" {
			t.Errorf("message = %q, want %q", st.Message(), "no such user")
		}

		details := st.Details()
		if len(details) != 1 {
			t.Fatalf("details length = %d, want 1", len(details))
		}
		info, ok := details[0].(*errdetails.ErrorInfo)
		if !ok {
			t.Fatalf("detail = %T, want *errdetails.ErrorInfo", details[0])
		}
		if info.GetReason() != "MSG404" {
			t.Errorf("Reason = %q, want %q", info.GetReason(), "MSG404")
		}
		if info.GetDomain() != "Client::NotFound::UserLookup" {
			t.Errorf("Domain = %q", info.GetDomain())
		}
		if info.GetMetadata()["user_id"] != "42" {
			t.Errorf("metadata user_id = %q", info.GetMetadata()["user_id"])
		}
		// non-string detail values are JSON-encoded
		if info.GetMetadata()["attempts"] != "3" {
			t.Errorf("metadata attempts = %q, want %q", info.GetMetadata()["attempts"], "3")
		}
	})

	t.Run("opaque error", func(t *testing.T) {
		t.Parallel()
		st := gerr.ToStatus(errors.New("boom"))
		if st.Code() != codes.Internal {
			t.Errorf("code = %v, want Internal", st.Code())
		}
		if st.Message() != "boom" {
			t.Errorf("message = %q, want %q", st.Message(), "boom")
		}
	})
}

func TestFromStatus(t *testing.T) {
	t.Parallel()

	t.Run("OK returns nil", func(t *testing.T) {
		t.Parallel()
		if e := gerr.FromStatus(status.New(codes.OK, "")); e != nil {
			t.Errorf("FromStatus(OK) = %v, want nil", e)
		}
	})

	t.Run("restores identity from ErrorInfo", func(t *testing.T) {
		t.Parallel()
		orig := kinderr.NewBase(kinderr.NotFound, "UserLookup").
			SetMessage("no such user").
			SetDetail("user_id", "42")
		e := gerr.FromStatus(gerr.ToStatus(orig))

		if e.Kind() != kinderr.NotFound {
			t.Errorf("Kind() = %v, want NotFound", e.Kind())
		}
		if e.Class() != "Client::NotFound::UserLookup" {
			t.Errorf("Class() = %q", e.Class())
		}
		if e.Message() != "no such user" {
			t.Errorf("Message() = %q", e.Message())
		}
		if d := e.Details(); d["user_id"] != "42" {
			t.Errorf("Details() = %v", d)
		}
	})

	t.Run("restores the message ID of custom kinds", func(t *testing.T) {
		t.Parallel()
		kindIO := kinderr.NewKind("IoError", "Err-00001", 500, "I/O failure")
		orig := kinderr.NewBase(kindIO, "ReadFailed").SetMessage("disk full")
		e := gerr.FromStatus(gerr.ToStatus(orig))

		if got := e.Kind().MessageID(); got != "Err-00001" {
			t.Errorf("MessageID() = %q, want %q", got, "Err-00001")
		}
		want := "[Err-00001] Server::IoError::ReadFailed (500) - disk full"
		if got := e.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("bare status", func(t *testing.T) {
		t.Parallel()
		e := gerr.FromStatus(status.New(codes.Unavailable, "try later"))
		if e.Kind() != kinderr.ServiceUnavailable {
			t.Errorf("Kind() = %v, want ServiceUnavailable", e.Kind())
		}
		if e.Class() != "Server::ServiceUnavailable::Error" {
			t.Errorf("Class() = %q", e.Class())
		}
		if e.Message() != "try later" {
			t.Errorf("Message() = %q", e.Message())
		}
	})
}

package translation

import (
	"errors"
	"fmt"
)

// Kind classifies the outcome of a translation.
type Kind int

const (
	KindOK Kind = iota
	// KindEmptyInput: nothing to translate, no call was made.
	KindEmptyInput
	KindMissingCredential
	KindAuthentication
	KindService
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindEmptyInput:
		return "empty_input"
	case KindMissingCredential:
		return "missing_credential"
	case KindAuthentication:
		return "authentication"
	case KindService:
		return "service"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

var ErrMissingCredential = errors.New("API key not configured")

// Result is what Translate hands back to callers. Text is empty unless Kind
// is KindOK (an OK result may still be empty if the model returned nothing).
type Result struct {
	Text   string
	Kind   Kind
	Err    error
	Cached bool
}

// Failed reports whether the result carries an error for the user.
func (r Result) Failed() bool {
	return r.Kind == KindMissingCredential || r.Kind == KindAuthentication || r.Kind == KindService
}

// Message is the user-facing text for a failed result, or "".
func (r Result) Message() string {
	switch r.Kind {
	case KindMissingCredential:
		return MsgMissingCredential
	case KindAuthentication:
		return MsgInvalidCredential
	case KindService:
		return fmt.Sprintf("An unexpected error occurred: %v", r.Err)
	default:
		return ""
	}
}

const (
	MsgEmptyInput        = "Start by typing something in the text box."
	MsgMissingCredential = "OpenAI API key not found. Please follow the setup instructions below."
	MsgInvalidCredential = "Your OpenAI API key seems to be incorrect. Please check it."
)

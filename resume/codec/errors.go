package codec

import "strings"

// DeserializationError reports persisted text that does not describe a
// resume document.
type DeserializationError struct {
	Reason  string
	Details []string
	Err     error
}

func (e *DeserializationError) Error() string {
	var b strings.Builder
	b.WriteString("deserialize resume: ")
	b.WriteString(e.Reason)
	if len(e.Details) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Details, "; "))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DeserializationError) Unwrap() error { return e.Err }

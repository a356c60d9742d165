package jsonscan

import "fmt"

// ScanError reports why a scan did not reach Success. It wraps the
// triggering ErrorCode so callers can use errors.Is/errors.As instead of
// comparing strings, the way coregx-coregex's DFAError pairs an ErrorKind
// with a formatted message.
type ScanError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *ScanError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ScanError) Unwrap() error {
	return e.Cause
}

func (e *ScanError) Is(target error) bool {
	t, ok := target.(*ScanError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func newScanError(code ErrorCode, length, byteCapacity uint64) *ScanError {
	switch code {
	case Capacity:
		return &ScanError{
			Code:    code,
			Message: fmt.Sprintf("input of %d bytes exceeds declared capacity of %d bytes", length, byteCapacity),
		}
	case Empty:
		return &ScanError{Code: code, Message: "input contained no JSON structural tokens"}
	case UnclosedString:
		return &ScanError{Code: code, Message: "document ends inside an open string"}
	case UnescapedChars:
		return &ScanError{Code: code, Message: "unescaped control character found inside a string"}
	case UTF8Error:
		return &ScanError{Code: code, Message: "invalid UTF-8 byte sequence"}
	case UnexpectedError:
		return &ScanError{Code: code, Message: "internal invariant violation: final offset exceeded input length"}
	default:
		return &ScanError{Code: code, Message: code.String()}
	}
}

// GetErrorMessage maps an ErrorCode to a human-readable description,
// independent of any specific scan, for callers that only have the code
// (e.g. after the originating *ScanError has gone out of scope).
func GetErrorMessage(code ErrorCode) string {
	switch code {
	case Success:
		return "success"
	case Capacity:
		return "input exceeds declared capacity"
	case Empty:
		return "input contained no JSON structural tokens"
	case UnclosedString:
		return "document ends inside an open string"
	case UnescapedChars:
		return "unescaped control character found inside a string"
	case UTF8Error:
		return "invalid UTF-8 byte sequence"
	case UnexpectedError:
		return "internal invariant violation"
	default:
		return "unknown error"
	}
}

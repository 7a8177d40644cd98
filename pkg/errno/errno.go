package errno

import "errors"

// Errno defines the error code logic
type Errno struct {
	Code    int
	Message string
}

func (e Errno) Error() string {
	return e.Message
}

// Decode tries to convert an error to Errno. Wrapped errors keep the code of
// the innermost Errno but report the full message chain.
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	var typed Errno
	if errors.As(err, &typed) {
		return typed.Code, err.Error()
	}
	var ptr *Errno
	if errors.As(err, &ptr) && ptr != nil {
		return ptr.Code, err.Error()
	}
	return InternalError.Code, err.Error()
}

// Class returns the thousands group of a code (10 for generic errors, 20 for
// derivation errors). The CLI uses it as its exit status.
func Class(code int) int {
	return code / 1000 % 100
}

// Common Errors
var (
	OK            = Errno{Code: 0, Message: "Success"}
	InternalError = Errno{Code: 10001, Message: "Internal error"}
	ErrBadInput   = Errno{Code: 10002, Message: "Invalid input"}
)

// Derivation Errors (20000+)
var (
	ErrInvalidSeedSize = Errno{Code: 20101, Message: "bad seed size"}
	ErrUnknownCurve    = Errno{Code: 20102, Message: "unknown curve"}
	ErrMalformedPath   = Errno{Code: 20103, Message: "invalid BIP32 path"}
	ErrInvalidHex      = Errno{Code: 20104, Message: "invalid hex string"}

	ErrHardenedDerivation    = Errno{Code: 20201, Message: "can't use hardened derivation with public key"}
	ErrNonHardenedDerivation = Errno{Code: 20202, Message: "non hardened derivation"}
	ErrPublicKeyDerivation   = Errno{Code: 20203, Message: "can't use public key for derivation"}

	ErrNotAPrivateKey = Errno{Code: 20301, Message: "not a private key"}
	ErrNotAPublicKey  = Errno{Code: 20302, Message: "not a public key"}
	ErrInvalidKey     = Errno{Code: 20303, Message: "invalid key material"}

	ErrUnsupportedAddress  = Errno{Code: 20401, Message: "unsupported address type"}
	ErrUnsupportedEncoding = Errno{Code: 20402, Message: "unsupported extended key encoding"}
)

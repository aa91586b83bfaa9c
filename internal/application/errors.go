package application

import "errors"

// ErrInvalidCredentials is returned for any login failure: unknown email or
// wrong password, indistinguishably.
var ErrInvalidCredentials = errors.New("invalid credentials")

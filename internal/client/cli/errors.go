package cli

import (
	"errors"
	"fmt"

	"github.com/iudanet/takenotes/internal/client/api"
)

// userError carries a message already phrased for the terminal
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return fmt.Sprintf("%s (%v)", e.msg, e.err)
}

func (e *userError) Unwrap() error { return e.err }

func newUserError(msg string, err error) error {
	return &userError{msg: msg, err: err}
}

// describeError maps client error kinds to messages the user can act on.
// The wrapped error stays reachable through errors.Is / errors.As.
func describeError(err error) error {
	if err == nil {
		return nil
	}

	var ue *userError
	if errors.As(err, &ue) {
		return err
	}

	switch {
	case errors.Is(err, api.ErrUnauthorized):
		return &userError{msg: "session expired or invalid, please run 'takenotes login'", err: err}
	case errors.Is(err, api.ErrNetwork):
		return &userError{msg: "server unreachable, check --server and your connection", err: err}
	case errors.Is(err, api.ErrMalformedResponse):
		return &userError{msg: "unexpected response from server", err: err}
	}

	// ошибки валидации и статуса и так понятны пользователю
	return err
}

package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code Code
	Op   string
	Err  error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func WrapWithCode(code Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Code: code,
		Op:   op,
		Err:  err,
	}
}

// CodeOf returns the code of the outermost AppError in err's chain,
// CodeInternal if there is none.
func CodeOf(err error) Code {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// HTTPStatus maps an error to the status code the api layer answers with.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeInvalidStrength,
		CodeEntropyTooShort,
		CodeEntropyTooLong,
		CodeInvalidEntropyLength,
		CodeInvalidMnemonic,
		CodeChecksumMismatch,
		CodeInvalidPath,
		CodeInvalidAddress,
		CodeInvalidRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidMasterKey, CodeInvalidChildKey, CodeInvalidPrivateKey:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

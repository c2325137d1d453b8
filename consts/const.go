package consts

import "fmt"

const (
	// StandardDeckSize is the number of cards in one canonical deck.
	StandardDeckSize = 52

	DefaultDiceSides = 6
)

const (
	CodeInvalidArgument = iota + 1
	CodeTypeMismatch
	CodeNotFound
	CodeEmptyDeck
)

type Error struct {
	Code int
	Msg  string
}

func (e Error) Error() string {
	return e.Msg
}

// Is matches any error carrying the same code, so detailed errors built
// with Errorf still satisfy errors.Is against the Errors* values.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code == e.Code
}

// Errorf returns a copy of e with a detailed message.
func (e Error) Errorf(format string, args ...interface{}) Error {
	return Error{Code: e.Code, Msg: e.Msg + fmt.Sprintf(format, args...)}
}

func NewErr(code int, msg string) Error {
	return Error{Code: code, Msg: msg}
}

var (
	ErrorsInvalidArgument = NewErr(CodeInvalidArgument, "Invalid argument. ")
	ErrorsTypeMismatch    = NewErr(CodeTypeMismatch, "Type mismatch. ")
	ErrorsNotFound        = NewErr(CodeNotFound, "Not found. ")
	ErrorsEmptyDeck       = NewErr(CodeEmptyDeck, "Empty deck. ")
)

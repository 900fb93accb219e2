package api

import (
	"errors"
	"fmt"
)

// Kind классифицирует неуспешный вызов API.
// От вида ошибки зависит реакция экрана: выход из сессии, уведомление или повтор.
type Kind int

const (
	// KindTransport - сеть, таймаут, 5xx или нечитаемый ответ
	KindTransport Kind = iota
	// KindAuthentication - сервер ответил 401 или 403
	KindAuthentication
	// KindBusiness - прочие 4xx или ответ 2xx с success=false
	KindBusiness
	// KindPrecondition - нет токена, запрос не отправлялся
	KindPrecondition
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAuthentication:
		return "authentication"
	case KindBusiness:
		return "business"
	case KindPrecondition:
		return "precondition"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Сообщения по умолчанию для пользователя
const (
	MsgAuthRequired   = "Authentication required. Please log in."
	MsgRequestTimeout = "Request timed out. Please try again."
	MsgBadResponse    = "Unexpected response from server."
)

// ErrNoCredential is returned (wrapped in *Error) when an authenticated
// call is attempted without a stored token.
var ErrNoCredential = errors.New("no credential stored")

// Error describes a failed API call. Message is always safe to show to the user.
type Error struct {
	Err     error  // первопричина, может быть nil
	Op      string // операция, например "fetch bookmarks"
	Message string // текст для пользователя
	Status  int    // HTTP статус, 0 если ответа не было
	Kind    Kind
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (%d): %s", e.Op, e.Kind, e.Status, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError extracts *Error from the chain of err.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == kind
}

// kindForStatus классифицирует неуспешный HTTP статус
func kindForStatus(status int) Kind {
	switch {
	case status == 401 || status == 403:
		return KindAuthentication
	case status >= 400 && status < 500:
		return KindBusiness
	default:
		return KindTransport
	}
}

package pageerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// client-side validation errors, raised before any network call
var (
	ErrMissingItemReference = errors.New("물건 정보를 찾을 수 없습니다. 페이지를 새로고침하고 다시 시도해주세요.")
	ErrBidTooLow            = errors.New("최저입찰가 이상의 금액을 입력해주세요.")
	ErrMissingRefundAccount = errors.New("환불계좌 정보를 모두 입력해주세요.")
	ErrMissingFields        = errors.New("모든 항목을 입력해주세요.")
	ErrNotVerified          = errors.New("회원 정보 확인이 필요합니다.")
	ErrPasswordRequired     = errors.New("비밀번호를 입력해주세요.")
	ErrPasswordMismatch     = errors.New("비밀번호가 일치하지 않습니다.")
	ErrPasswordTooShort     = errors.New("비밀번호는 4자 이상이어야 합니다.")
	ErrEmptyContent         = errors.New("댓글 내용을 입력해주세요.")
	ErrMissingID            = errors.New("ID가 없습니다.")
	ErrZipcodeRequired      = errors.New("우편번호는 필수 입력입니다.")
	ErrIDNotChecked         = errors.New("아이디 중복체크를 해주세요.")
	ErrIDRequired           = errors.New("아이디를 입력해주세요.")
	ErrInvalidOption        = errors.New("선택한 항목이 올바르지 않습니다.")
)

// flow state errors
var (
	ErrSubmissionInFlight    = errors.New("입찰서를 제출하는 중입니다.")
	ErrAlreadySubmitted      = errors.New("이미 제출된 입찰서입니다.")
	ErrPaymentSDKUnavailable = errors.New("결제 시스템을 초기화할 수 없습니다. 페이지를 새로고침해주세요.")
	ErrPageExpired           = errors.New("페이지가 만료되었습니다. 페이지를 새로고침해주세요.")
)

// malformed success responses
var (
	ErrMissingPaymentID   = errors.New("입찰서 제출에 실패했습니다: paymentId가 없습니다.")
	ErrMissingMerchantUID = errors.New("결제 준비에 실패했습니다: merchantUid가 없습니다.")
	ErrUnexpectedShape    = errors.New("응답 형식이 올바르지 않습니다.")
)

// Kind separates business failures from transport failures
type Kind string

const (
	// Business is a success:false answer from the backend
	Business Kind = "business"
	// Transport is a non-2xx status, a network error or an unreadable body
	Transport Kind = "transport"
)

// BackendError is a failure reported by, or on the way to, the backend.
// Status is 0 when no HTTP response was received.
type BackendError struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *BackendError) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s (status %d): %s: %v", e.Kind, e.Status, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s (status %d): %v", e.Kind, e.Status, e.Err)
	default:
		return fmt.Sprintf("%s (status %d)", e.Kind, e.Status)
	}
}

func (e *BackendError) Unwrap() error { return e.Err }

// NewBusinessError wraps a success:false message
func NewBusinessError(status int, message string) *BackendError {
	return &BackendError{Kind: Business, Status: status, Message: message}
}

// NewTransportError wraps a transport failure. message is whatever the error
// body carried, possibly empty.
func NewTransportError(status int, message string, err error) *BackendError {
	return &BackendError{Kind: Transport, Status: status, Message: message, Err: err}
}

// AsBackend unwraps a *BackendError
func AsBackend(err error) (*BackendError, bool) {
	var be *BackendError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// IsAuthRequired reports a 401/403 answer
func IsAuthRequired(err error) bool {
	be, ok := AsBackend(err)
	return ok && (be.Status == http.StatusUnauthorized || be.Status == http.StatusForbidden)
}

// Messages shown for transport failures
const (
	MsgLoginRequired = "로그인이 필요합니다."
	MsgNotFound      = "요청한 정보를 찾을 수 없습니다."
	MsgServerError   = "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
	MsgNoConnection  = "서버에 연결할 수 없습니다. 네트워크를 확인해주세요."
)

// UserMessage returns the text a page shows for err.
//
// Business failures surface the server message verbatim (fallback if empty).
// Transport failures are upgraded by status: 401/403, 404, 500; otherwise the
// error-body message is used when present, else fallback. Client-side
// validation errors carry their own text.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	be, ok := AsBackend(err)
	if !ok {
		return err.Error()
	}
	if be.Kind == Business {
		if be.Message != "" {
			return be.Message
		}
		return fallback
	}
	switch be.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return MsgLoginRequired
	case http.StatusNotFound:
		return MsgNotFound
	case http.StatusInternalServerError:
		return MsgServerError
	}
	if be.Message != "" {
		return be.Message
	}
	return fallback
}

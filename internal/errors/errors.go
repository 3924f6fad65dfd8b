package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrClubNotFound is returned when a club is not found.
	ErrClubNotFound = errors.New("club not found")
	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = errors.New("event not found")
	// ErrPollNotFound is returned when a date poll is not found.
	ErrPollNotFound = errors.New("date poll not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotClubMember is returned when the acting user does not belong to the club.
	ErrNotClubMember = errors.New("not a member of this club")
	// ErrNotClubOwner is returned when an action requires the owner role.
	ErrNotClubOwner = errors.New("only a club owner can do this")
	// ErrNotEventPicker is returned when an event edit requires picker or owner rights.
	ErrNotEventPicker = errors.New("only the event picker or a club owner can do this")
	// ErrNotPollAuthority is returned when closing a poll without authority.
	ErrNotPollAuthority = errors.New("only poll creator or club owner can close the poll")
	// ErrEventFull is returned when an attending RSVP would exceed the seat limit.
	ErrEventFull = errors.New("Event is full")
	// ErrPollClosed is returned when voting on a closed or expired poll.
	ErrPollClosed = errors.New("Poll closed")
	// ErrActivePoll is returned when the club already has a live date poll.
	ErrActivePoll = errors.New("already an active date poll")
	// ErrInvalidRSVPStatus is returned for RSVP statuses outside the accepted set.
	ErrInvalidRSVPStatus = errors.New("invalid RSVP status")
	// ErrBadOptionCount is returned when a poll proposes fewer than 3 or more than 5 dates.
	ErrBadOptionCount = errors.New("optionDates must contain between 3 and 5 dates")
	// ErrBadOptionDate is returned when a proposed date cannot be parsed.
	ErrBadOptionDate = errors.New("invalid option date")
	// ErrInvalidJoinCode is returned when a join code matches no club.
	ErrInvalidJoinCode = errors.New("invalid join code")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Not-found lookups map to
// 404, authorization failures to 403, and domain rule violations to 400 with
// their exact message, since clients branch on message content.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrClubNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CLUB_NOT_FOUND")
	case ErrEventNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "EVENT_NOT_FOUND")
	case ErrPollNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "POLL_NOT_FOUND")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrNotClubMember:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_CLUB_MEMBER")
	case ErrNotClubOwner:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_CLUB_OWNER")
	case ErrNotEventPicker:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_EVENT_PICKER")
	case ErrNotPollAuthority:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_POLL_AUTHORITY")
	case ErrEventFull:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EVENT_FULL")
	case ErrPollClosed:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "POLL_CLOSED")
	case ErrActivePoll:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ACTIVE_POLL_EXISTS")
	case ErrInvalidRSVPStatus:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_RSVP_STATUS")
	case ErrBadOptionCount:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "BAD_OPTION_COUNT")
	case ErrBadOptionDate:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "BAD_OPTION_DATE")
	case ErrInvalidJoinCode:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_JOIN_CODE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

package auth

import "errors"

// Error is an identity failure carrying a stable code that clients switch on.
type Error struct {
	Code string
}

func (e *Error) Error() string { return e.Code }

var (
	ErrUserNotFound        = &Error{Code: "auth/user-not-found"}
	ErrWrongPassword       = &Error{Code: "auth/wrong-password"}
	ErrInvalidCredential   = &Error{Code: "auth/invalid-credential"}
	ErrEmailInUse          = &Error{Code: "auth/email-already-in-use"}
	ErrWeakPassword        = &Error{Code: "auth/weak-password"}
	ErrInvalidEmail        = &Error{Code: "auth/invalid-email"}
	ErrOperationNotAllowed = &Error{Code: "auth/operation-not-allowed"}
	ErrTooManyRequests     = &Error{Code: "auth/too-many-requests"}
	ErrTokenExpired        = &Error{Code: "auth/user-token-expired"}
)

// Message is the user-facing text for an identity failure.
type Message struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Code returns the identity code of err, or "" if err is not an *Error.
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Describe maps err to the title and description shown to the user.
// Unknown errors get a generic message.
func Describe(err error) Message {
	switch Code(err) {
	case ErrUserNotFound.Code:
		return Message{"User Not Found", "No account found with this email. Please sign up."}
	case ErrWrongPassword.Code, ErrInvalidCredential.Code:
		return Message{"Incorrect Email or Password", "The email or password you entered is incorrect. Please try again."}
	case ErrEmailInUse.Code:
		return Message{"Email In Use", "This email is already associated with an account. Please log in."}
	case ErrWeakPassword.Code:
		return Message{"Weak Password", "The password must be at least 6 characters long."}
	case ErrInvalidEmail.Code:
		return Message{"Invalid Email", "Please enter a valid email address."}
	case ErrOperationNotAllowed.Code:
		return Message{"Sign-in Method Disabled", "This sign-in method is not enabled on this server."}
	case ErrTooManyRequests.Code:
		return Message{"Too Many Requests", "You have tried to sign in too many times. Please wait a while before trying again."}
	case ErrTokenExpired.Code:
		return Message{"Session Expired", "Your session has expired. Please log in again."}
	default:
		return Message{"Authentication Failed", "An unexpected error occurred. Please try again."}
	}
}

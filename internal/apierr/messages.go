package apierr

import "net/http"

const (
	MsgUserDoesNotExist          = "User does not exist."
	MsgSongDoesNotExist          = "Track does not exist."
	MsgGenreDoesNotExist         = "Genre does not exist."
	MsgInvalidEmailAddress       = "Enter a valid email address."
	MsgUserAlreadyExists         = "User with this email already exists"
	MsgInvalidEmailOrPassword    = "Invalid email or password"
	MsgRequiredEmail             = "email, email field is required."
	MsgRequiredPassword          = "password, password field is required."
	MsgRequiredEmailAndPassword  = "Email and Password required"
	MsgTokenUnauthorized         = "You do not have permission to perform this action"
	MsgTokenNotFound             = "token must be required"
	MsgLoginSuccessful           = "Login successful"
	MsgPasswordNecessity         = "Password is not acceptable"
	MsgUserWithEmailDoesNotExist = "User with specified email does not exist."
	MsgInvalidRequestBody        = "Invalid request body"
	MsgInternalServerError       = "Internal server error"
)

var (
	ErrUserDoesNotExist          = New(http.StatusNotFound, MsgUserDoesNotExist)
	ErrUserWithEmailDoesNotExist = New(http.StatusNotFound, MsgUserWithEmailDoesNotExist)
	ErrGenreDoesNotExist         = New(http.StatusNotFound, MsgGenreDoesNotExist)
	ErrSongDoesNotExist          = New(http.StatusNotFound, MsgSongDoesNotExist)

	ErrRequiredEmail            = New(http.StatusBadRequest, MsgRequiredEmail)
	ErrInvalidEmailAddress      = New(http.StatusBadRequest, MsgInvalidEmailAddress)
	ErrRequiredPassword         = New(http.StatusBadRequest, MsgRequiredPassword)
	ErrPasswordNecessity        = New(http.StatusBadRequest, MsgPasswordNecessity)
	ErrRequiredEmailAndPassword = New(http.StatusBadRequest, MsgRequiredEmailAndPassword)
	ErrUserAlreadyExists        = New(http.StatusBadRequest, MsgUserAlreadyExists)
	ErrInvalidRequestBody       = New(http.StatusBadRequest, MsgInvalidRequestBody)

	ErrInvalidEmailOrPassword = New(http.StatusUnauthorized, MsgInvalidEmailOrPassword)
	ErrTokenUnauthorized      = New(http.StatusUnauthorized, MsgTokenUnauthorized)
	ErrTokenMissing           = New(http.StatusUnauthorized, MsgTokenNotFound)
	ErrTokenNotFound          = New(http.StatusNotFound, MsgTokenNotFound)
)

package quiz

import "errors"

var (
	// ErrNotFound means the operation referenced a user with no profile.
	ErrNotFound = errors.New("user profile not found")

	// ErrNoPendingQuestion means an answer arrived with no question in flight.
	ErrNoPendingQuestion = errors.New("no pending question for user")
)

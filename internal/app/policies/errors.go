package policies

import "errors"

// GenericFailureMessage is shown when a collaborator fails without a
// user-presentable message.
const GenericFailureMessage = "Something went wrong. Please try again."

// Messenger is implemented by collaborator errors that carry a message safe
// to show verbatim to the user.
type Messenger interface {
	error
	UserMessage() string
}

// UserMessage extracts the collaborator's own message when available and
// falls back to a generic failure message otherwise.
func UserMessage(err error) string {
	var m Messenger
	if errors.As(err, &m) && m.UserMessage() != "" {
		return m.UserMessage()
	}
	return GenericFailureMessage
}

package game

// Publisher delivers narration for a game session. Messages published to a
// subject must be delivered in the order they were published.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// SessionSubject is the subject a session's narration is published on.
func SessionSubject(sessionId string) string {
	return "adventure.session." + sessionId
}

package events

var EmailDispatchedTopic = "EmailDispatchedEvent"

// EmailDispatched is published after every dispatch attempt, successful or
// not. Subscribers must not block: the dispatcher publishes synchronously.
type EmailDispatched struct {
	JobTitle  string
	Recipient string
	Success   bool
}

// Package events defines the event-bus topics shared by BirthdayBook
// components. The auth service publishes session changes; the store
// publishes a change event after every successful mutation so read-only
// consumers can refresh without polling.
package events

const (
	// TopicSessionChanged carries the new active user identifier as a
	// string argument; an empty string means "logged out".
	TopicSessionChanged = "session:changed"

	// TopicStoreChanged is published with no arguments after every
	// successful mutation and after a session reload.
	TopicStoreChanged = "store:changed"
)

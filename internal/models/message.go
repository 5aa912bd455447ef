package models

import "time"

// BirthdayMessage is an append-only log record of a greeting "send".
// The ClientId reference is not an ownership reference: the client may be
// deleted later, in which case the message is removed as well (cascade).
type BirthdayMessage struct {
	// Id is a globally unique identifier for the message.
	Id string `json:"id"`

	// ClientId references the client the greeting was sent to.
	ClientId string `json:"clientId"`

	// SentDate is the moment the message was logged. Immutable.
	SentDate time.Time `json:"sentDate"`

	// Viewed reports whether the recipient opened the message.
	// Monotonic: transitions false -> true and never reverts.
	Viewed bool `json:"viewed"`

	// Clicked reports whether the recipient followed the link.
	// Monotonic, same rule as Viewed.
	Clicked bool `json:"clicked"`

	// UserId is the identifier of the owning user.
	UserId string `json:"userId"`
}

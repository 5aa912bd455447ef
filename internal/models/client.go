// Package models defines the data records managed by the BirthdayBook client.
package models

// Client is a CRM client record owned by a single user.
type Client struct {
	// Id is a globally unique identifier for the client.
	Id string `json:"id"`

	// Name is the client's display name.
	Name string `json:"name"`

	// Email is the address greetings would be delivered to.
	Email string `json:"email"`

	// Phone is a free-form phone number.
	Phone string `json:"phone"`

	// Birthdate is a calendar date; only month and day are semantically
	// used, the year may be arbitrary.
	Birthdate Date `json:"birthdate"`

	// UserId is the identifier of the owning user. It always equals the
	// identifier of the user that was active when the client was created.
	UserId string `json:"userId"`
}

// ClientData carries the caller-supplied fields of a client, without the
// generated identifier and owner stamp.
type ClientData struct {
	Name      string
	Email     string
	Phone     string
	Birthdate Date
}

package models

// User is an account record owned by the auth service. The store only ever
// looks at Id, which partitions all persisted collections.
type User struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// Package principal holds the authenticated caller passed explicitly to every
// service operation. Services never read the session themselves.
package principal

import "github.com/google/uuid"

type User struct {
	ID string
}

func New(id string) User {
	return User{ID: id}
}

// UUID parses the caller id. ok is false for an empty or malformed id.
func (u User) UUID() (uuid.UUID, bool) {
	id, err := uuid.Parse(u.ID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// README: Common ID value object used across modules.
package types

import "github.com/google/uuid"

type ID string

// NewID returns a random session/user identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

func (id ID) String() string { return string(id) }

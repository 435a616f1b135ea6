// Package guard authorizes mutations by comparing the actor with the
// recorded owner of an entity.
package guard

import (
	"vidtube.com/pkg/errno"
)

// Owned is implemented by every entity that carries an owner reference.
type Owned interface {
	OwnerID() int64
}

// AssertOwner returns errno.ForbiddenErr unless actor owns entity.
func AssertOwner(actor int64, entity Owned) error {
	if entity == nil || actor <= 0 || entity.OwnerID() != actor {
		return errno.ForbiddenErr
	}
	return nil
}

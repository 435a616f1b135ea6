package guard

import (
	"errors"
	"testing"

	"vidtube.com/pkg/errno"
)

type owned int64

func (o owned) OwnerID() int64 { return int64(o) }

func TestAssertOwner(t *testing.T) {
	if err := AssertOwner(7, owned(7)); err != nil {
		t.Fatalf("owner rejected: %v", err)
	}
	for _, tc := range []struct {
		name   string
		actor  int64
		entity Owned
	}{
		{"other user", 8, owned(7)},
		{"anonymous", 0, owned(0)},
		{"nil entity", 7, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := AssertOwner(tc.actor, tc.entity)
			if !errors.Is(err, errno.ForbiddenErr) {
				t.Fatalf("expected forbidden, got %v", err)
			}
		})
	}
}

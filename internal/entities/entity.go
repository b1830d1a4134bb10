// Package entities contains core business entities.
package entities

import (
	"encoding/binary"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
)

// Entity is the identity base embedded by every domain entity.
// Equality between entities is identity-based: same concrete type, same ID.
type Entity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NewEntity stamps a fresh identity base. The caller supplies the current
// UTC time so timestamps stay deterministic under an injected clock.
func NewEntity(id uuid.UUID, now time.Time) Entity {
	return Entity{ID: id, CreatedAt: now.UTC()}
}

// MarkAsUpdated overwrites UpdatedAt; each call replaces the prior value.
func (e *Entity) MarkAsUpdated(now time.Time) {
	t := now.UTC()
	e.UpdatedAt = &t
}

// sameIdentity reports identity equality against another base.
// Callers guarantee matching concrete types through typed Equal methods.
func (e *Entity) sameIdentity(other *Entity) bool {
	if other == nil {
		return false
	}
	return e.ID == other.ID
}

// Hash returns a stable hash derived from (ID, CreatedAt).
func (e *Entity) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write(e.ID[:])
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(e.CreatedAt.UnixNano()))
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

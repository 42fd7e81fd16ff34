package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meta carries the fields every stored document shares: the Mongo
// object id and the creation/update timestamps. Embed it inline so the
// fields flatten into the document.
type Meta struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// SetID records the id assigned by the storage layer on insert.
func (m *Meta) SetID(id primitive.ObjectID) { m.ID = id }

// StampCreated sets the creation timestamp. Called exactly once by the
// CRUD layer right before insert.
func (m *Meta) StampCreated(t time.Time) { m.CreatedAt = t }

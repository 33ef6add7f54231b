package models

import "time"

// Meta carries the identity and timestamps shared by every document. Embed
// it so collections can stamp records without knowing their concrete type.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Meta) DocID() string { return m.ID }

func (m *Meta) SetDocID(id string) { m.ID = id }

// StampCreated sets both timestamps; called once when a document is added.
func (m *Meta) StampCreated(t time.Time) {
	m.CreatedAt = t
	m.UpdatedAt = t
}

// Touch refreshes the update timestamp on every mutation.
func (m *Meta) Touch(t time.Time) { m.UpdatedAt = t }

package models

import "time"

// ClipKind classifies the payload of a clipboard entry.
type ClipKind int

const (
	ClipKindText ClipKind = iota
	ClipKindImage
)

// ClipEntry is a single captured clipboard item as stored locally.
// Payload holds the encrypted blob (or plaintext, when encryption has never
// been enabled); Preview is a short excerpt for list views.
type ClipEntry struct {
	ID        string    `json:"id"`
	Kind      ClipKind  `json:"kind"`
	Payload   []byte    `json:"payload"`
	Preview   string    `json:"preview"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int64     `json:"version"`
	Dirty     bool      `json:"dirty"`
	Deleted   bool      `json:"deleted"`
}

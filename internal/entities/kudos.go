// Package entities contains core business entities.
package entities

import "time"

// KudosType enumerates recognition tokens.
type KudosType string

const (
	// KudosSilver is available to every user.
	KudosSilver KudosType = "Silver"
	// KudosGold is reserved for team leads awarding their direct reports.
	KudosGold KudosType = "Gold"
)

// Valid reports whether t is a known kudos type.
func (t KudosType) Valid() bool {
	return t == KudosSilver || t == KudosGold
}

// Weight returns the leaderboard score of a single token.
func (t KudosType) Weight() int {
	if t == KudosGold {
		return 2
	}
	return 1
}

// Image is an opaque attachment produced by the image generator.
type Image struct {
	Data     []byte
	MIMEType string
}

// Kudos is a single ledger entry. Entries are never mutated once appended.
type Kudos struct {
	ID         string
	SenderID   string
	ReceiverID string
	Type       KudosType
	Message    string
	CreatedAt  time.Time
	Image      *Image
}

// IssueRequest carries the caller-supplied part of a new ledger entry.
type IssueRequest struct {
	SenderID   string
	ReceiverID string
	Type       KudosType
	Message    string
	Image      *Image
}

// Clone returns a deep copy of the entry.
func (k Kudos) Clone() Kudos {
	if k.Image != nil {
		data := make([]byte, len(k.Image.Data))
		copy(data, k.Image.Data)
		k.Image = &Image{Data: data, MIMEType: k.Image.MIMEType}
	}
	return k
}

// Package entities contains core business entities.
package entities

import "time"

// MessagePrompt is the input of a kudos message suggestion.
type MessagePrompt struct {
	SenderName   string
	ReceiverName string
	// Seed is free text the sender already typed; may be empty.
	Seed string
}

// ImagePrompt is the input of a kudos certificate image.
type ImagePrompt struct {
	SenderName string
	Receiver   User
	Message    string
	Date       time.Time
}

// Package domain contains application services orchestrating domain logic by generation.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/nicles7/kudos-app/internal/entities"
)

// MessageComposer suggests kudos text.
type MessageComposer interface {
	SuggestMessage(ctx context.Context, prompt entities.MessagePrompt) (string, error)
}

// ImageGenerator renders and corrects kudos certificate images.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt entities.ImagePrompt) (*entities.Image, error)
	ReviseImage(ctx context.Context, prior *entities.Image, instruction string) (*entities.Image, error)
}

// SuggestMessage asks the composer for a message from sender to receiver.
// It never touches the ledger.
func (u *Usecase) SuggestMessage(ctx context.Context, senderID, receiverID, seed string) (string, error) {
	if u.composer == nil {
		return "", entities.ErrGenerationDisabled
	}
	if receiverID == "" {
		return "", fmt.Errorf("%w: select a recipient first", entities.ErrInvalidArgument)
	}
	sender, receiver, err := u.pair(ctx, senderID, receiverID)
	if err != nil {
		return "", err
	}

	ctx, cancel := withTimeout(ctx, u.genTO)
	defer cancel()

	text, err := u.composer.SuggestMessage(ctx, entities.MessagePrompt{
		SenderName:   sender.Name,
		ReceiverName: receiver.Name,
		Seed:         strings.TrimSpace(seed),
	})
	if err != nil {
		u.log.Warnw("message suggestion failed", "error", err, "sender_id", senderID)
		return "", fmt.Errorf("%w: %w", entities.ErrGenerationFailed, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty suggestion", entities.ErrGenerationFailed)
	}
	return text, nil
}

// GenerateImage renders a certificate for a kudos message.
func (u *Usecase) GenerateImage(ctx context.Context, senderID, receiverID, message string) (*entities.Image, error) {
	if u.images == nil {
		return nil, entities.ErrGenerationDisabled
	}
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: write a message first", entities.ErrInvalidArgument)
	}
	if receiverID == "" {
		return nil, fmt.Errorf("%w: select a recipient first", entities.ErrInvalidArgument)
	}
	sender, receiver, err := u.pair(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, u.genTO)
	defer cancel()

	img, err := u.images.GenerateImage(ctx, entities.ImagePrompt{
		SenderName: sender.Name,
		Receiver:   *receiver,
		Message:    strings.TrimSpace(message),
		Date:       u.now().In(u.loc),
	})
	if err != nil {
		u.log.Warnw("image generation failed", "error", err, "sender_id", senderID)
		return nil, fmt.Errorf("%w: %w", entities.ErrGenerationFailed, err)
	}
	if img == nil || len(img.Data) == 0 {
		return nil, fmt.Errorf("%w: no image returned", entities.ErrGenerationFailed)
	}
	return img, nil
}

// ReviseImage applies a correction instruction to a previously generated image.
func (u *Usecase) ReviseImage(ctx context.Context, prior *entities.Image, instruction string) (*entities.Image, error) {
	if u.images == nil {
		return nil, entities.ErrGenerationDisabled
	}
	if strings.TrimSpace(instruction) == "" {
		return nil, fmt.Errorf("%w: correction prompt is required", entities.ErrInvalidArgument)
	}
	if prior == nil || len(prior.Data) == 0 {
		return nil, fmt.Errorf("%w: no image to correct", entities.ErrInvalidArgument)
	}

	ctx, cancel := withTimeout(ctx, u.genTO)
	defer cancel()

	img, err := u.images.ReviseImage(ctx, prior, strings.TrimSpace(instruction))
	if err != nil {
		u.log.Warnw("image revision failed", "error", err)
		return nil, fmt.Errorf("%w: %w", entities.ErrGenerationFailed, err)
	}
	if img == nil || len(img.Data) == 0 {
		return nil, fmt.Errorf("%w: no image returned", entities.ErrGenerationFailed)
	}
	return img, nil
}

func (u *Usecase) pair(ctx context.Context, senderID, receiverID string) (*entities.User, *entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	sender, err := u.repo.GetUser(ctx, senderID)
	if err != nil {
		return nil, nil, err
	}
	receiver, err := u.repo.GetUser(ctx, receiverID)
	if err != nil {
		return nil, nil, err
	}
	return sender, receiver, nil
}

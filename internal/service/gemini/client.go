// Package gemini implements kudos message and image generation on the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nicles7/kudos-app/internal/entities"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultImageMIME = "image/png"

// ErrNoImage is returned when the model answers without an inline image.
var ErrNoImage = errors.New("response contains no image")

// contentGenerator is the part of *genai.Models the client needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config selects the models used by the client.
type Config struct {
	APIKey     string
	TextModel  string
	ImageModel string
}

// Client suggests kudos messages and renders certificate images.
type Client struct {
	log        *zap.SugaredLogger
	models     contentGenerator
	textModel  string
	imageModel string
}

// New creates a Gemini backed client.
func New(ctx context.Context, log *zap.SugaredLogger, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return newClient(log, client.Models, cfg), nil
}

func newClient(log *zap.SugaredLogger, models contentGenerator, cfg Config) *Client {
	return &Client{
		log:        log.Named("gemini"),
		models:     models,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
	}
}

// SuggestMessage asks the text model for a kudos message.
func (c *Client) SuggestMessage(ctx context.Context, prompt entities.MessagePrompt) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(MessagePrompt(prompt), genai.RoleUser),
	}
	resp, err := c.models.GenerateContent(ctx, c.textModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate message: %w", err)
	}
	if resp == nil {
		return "", nil
	}
	text := strings.TrimSpace(resp.Text())
	c.log.Debugw("message suggested", "model", c.textModel, "length", len(text))
	return text, nil
}

// GenerateImage renders a certificate for the prompt.
func (c *Client) GenerateImage(ctx context.Context, prompt entities.ImagePrompt) (*entities.Image, error) {
	parts := []*genai.Part{genai.NewPartFromText(ImagePrompt(prompt))}
	return c.image(ctx, parts)
}

// ReviseImage sends the prior image back together with a correction instruction.
func (c *Client) ReviseImage(ctx context.Context, prior *entities.Image, instruction string) (*entities.Image, error) {
	mime := prior.MIMEType
	if mime == "" {
		mime = defaultImageMIME
	}
	parts := []*genai.Part{
		genai.NewPartFromBytes(prior.Data, mime),
		genai.NewPartFromText(instruction),
	}
	return c.image(ctx, parts)
}

func (c *Client) image(ctx context.Context, parts []*genai.Part) (*entities.Image, error) {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := c.models.GenerateContent(ctx, c.imageModel, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityImage)},
	})
	if err != nil {
		return nil, fmt.Errorf("generate image: %w", err)
	}
	img := firstImage(resp)
	if img == nil {
		return nil, ErrNoImage
	}
	c.log.Debugw("image generated", "model", c.imageModel, "bytes", len(img.Data), "mime", img.MIMEType)
	return img, nil
}

func firstImage(resp *genai.GenerateContentResponse) *entities.Image {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		mime := part.InlineData.MIMEType
		if mime == "" {
			mime = defaultImageMIME
		}
		data := make([]byte, len(part.InlineData.Data))
		copy(data, part.InlineData.Data)
		return &entities.Image{Data: data, MIMEType: mime}
	}
	return nil
}

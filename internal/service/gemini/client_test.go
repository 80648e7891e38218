package gemini

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nicles7/kudos-app/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type generateCall struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

type fakeModels struct {
	resp  *genai.GenerateContentResponse
	err   error
	calls []generateCall
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls = append(f.calls, generateCall{model: model, contents: contents, config: config})
	return f.resp, f.err
}

func respond(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Role: "model", Parts: parts}}},
	}
}

func newTestClient(models *fakeModels) *Client {
	return newClient(zap.NewNop().Sugar(), models, Config{TextModel: "text-model", ImageModel: "image-model"})
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), zap.NewNop().Sugar(), Config{})
	require.Error(t, err)
}

func TestSuggestMessage(t *testing.T) {
	models := &fakeModels{resp: respond(genai.NewPartFromText("  Thanks for the launch!\n"))}
	c := newTestClient(models)

	text, err := c.SuggestMessage(context.Background(), entities.MessagePrompt{SenderName: "Alice", ReceiverName: "Bob"})
	require.NoError(t, err)
	require.Equal(t, "Thanks for the launch!", text)

	require.Len(t, models.calls, 1)
	call := models.calls[0]
	require.Equal(t, "text-model", call.model)
	require.Nil(t, call.config)
	require.Len(t, call.contents, 1)
	require.Contains(t, call.contents[0].Parts[0].Text, "from Alice to Bob")
}

func TestSuggestMessageError(t *testing.T) {
	upstream := errors.New("429")
	c := newTestClient(&fakeModels{err: upstream})

	_, err := c.SuggestMessage(context.Background(), entities.MessagePrompt{SenderName: "a", ReceiverName: "b"})
	require.ErrorIs(t, err, upstream)
}

func TestGenerateImage(t *testing.T) {
	models := &fakeModels{resp: respond(
		genai.NewPartFromText("here you go"),
		&genai.Part{InlineData: &genai.Blob{Data: []byte("jpeg-bytes"), MIMEType: "image/jpeg"}},
	)}
	c := newTestClient(models)

	img, err := c.GenerateImage(context.Background(), entities.ImagePrompt{
		SenderName: "Alice",
		Receiver:   entities.User{Name: "Bob", Role: entities.RoleTeamLead},
		Message:    "great quarter",
		Date:       time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, []byte("jpeg-bytes"), img.Data)
	require.Equal(t, "image/jpeg", img.MIMEType)

	call := models.calls[0]
	require.Equal(t, "image-model", call.model)
	require.Equal(t, []string{string(genai.ModalityImage)}, call.config.ResponseModalities)
	require.Contains(t, call.contents[0].Parts[0].Text, "Awarded To: Bob")
}

func TestGenerateImageWithoutInlineData(t *testing.T) {
	c := newTestClient(&fakeModels{resp: respond(genai.NewPartFromText("sorry"))})

	_, err := c.GenerateImage(context.Background(), entities.ImagePrompt{Receiver: entities.User{Name: "Bob"}})
	require.ErrorIs(t, err, ErrNoImage)

	c = newTestClient(&fakeModels{resp: &genai.GenerateContentResponse{}})
	_, err = c.GenerateImage(context.Background(), entities.ImagePrompt{})
	require.ErrorIs(t, err, ErrNoImage)
}

func TestReviseImage(t *testing.T) {
	models := &fakeModels{resp: respond(&genai.Part{InlineData: &genai.Blob{Data: []byte("v2")}})}
	c := newTestClient(models)

	img, err := c.ReviseImage(context.Background(), &entities.Image{Data: []byte("v1")}, "add confetti")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), img.Data)
	require.Equal(t, defaultImageMIME, img.MIMEType)

	parts := models.calls[0].contents[0].Parts
	require.Len(t, parts, 2)
	require.Equal(t, []byte("v1"), parts[0].InlineData.Data)
	require.Equal(t, defaultImageMIME, parts[0].InlineData.MIMEType)
	require.Equal(t, "add confetti", parts[1].Text)
}

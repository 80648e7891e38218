package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/nicles7/kudos-app/internal/entities"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type composerMock struct{ mock.Mock }

func (m *composerMock) SuggestMessage(ctx context.Context, prompt entities.MessagePrompt) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type imagesMock struct{ mock.Mock }

func (m *imagesMock) GenerateImage(ctx context.Context, prompt entities.ImagePrompt) (*entities.Image, error) {
	args := m.Called(ctx, prompt)
	img, _ := args.Get(0).(*entities.Image)
	return img, args.Error(1)
}

func (m *imagesMock) ReviseImage(ctx context.Context, prior *entities.Image, instruction string) (*entities.Image, error) {
	args := m.Called(ctx, prior, instruction)
	img, _ := args.Get(0).(*entities.Image)
	return img, args.Error(1)
}

func TestSuggestMessage(t *testing.T) {
	users, teams := office()
	composer := &composerMock{}
	f := newFixture(t, users, teams, nil, WithMessageComposer(composer))
	ctx := context.Background()

	composer.On("SuggestMessage", mock.Anything, entities.MessagePrompt{
		SenderName:   "Member A-1",
		ReceiverName: "Member B-1",
		Seed:         "release",
	}).Return("  Great job on the release!  ", nil).Once()

	text, err := f.uc.SuggestMessage(ctx, "A-1", "B-1", " release ")
	require.NoError(t, err)
	require.Equal(t, "Great job on the release!", text)

	_, err = f.uc.SuggestMessage(ctx, "A-1", "", "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	_, err = f.uc.SuggestMessage(ctx, "A-1", "ghost", "")
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	composer.AssertExpectations(t)
}

func TestSuggestMessageFailure(t *testing.T) {
	users, teams := office()
	composer := &composerMock{}
	f := newFixture(t, users, teams, nil, WithMessageComposer(composer))
	ctx := context.Background()

	upstream := errors.New("quota exhausted")
	composer.On("SuggestMessage", mock.Anything, mock.Anything).Return("", upstream).Once()
	composer.On("SuggestMessage", mock.Anything, mock.Anything).Return("   ", nil).Once()

	_, err := f.uc.SuggestMessage(ctx, "A-1", "B-1", "")
	require.ErrorIs(t, err, entities.ErrGenerationFailed)
	require.ErrorIs(t, err, upstream)

	_, err = f.uc.SuggestMessage(ctx, "A-1", "B-1", "")
	require.ErrorIs(t, err, entities.ErrGenerationFailed)

	ledger, err := f.uc.Ledger(ctx)
	require.NoError(t, err)
	require.Empty(t, ledger)
}

func TestGenerationDisabled(t *testing.T) {
	users, teams := office()
	f := newFixture(t, users, teams, nil)
	ctx := context.Background()

	_, err := f.uc.SuggestMessage(ctx, "A-1", "B-1", "")
	require.ErrorIs(t, err, entities.ErrGenerationDisabled)
	_, err = f.uc.GenerateImage(ctx, "A-1", "B-1", "thanks")
	require.ErrorIs(t, err, entities.ErrGenerationDisabled)
	_, err = f.uc.ReviseImage(ctx, &entities.Image{Data: []byte{1}}, "bluer")
	require.ErrorIs(t, err, entities.ErrGenerationDisabled)
}

func TestGenerateImage(t *testing.T) {
	users, teams := office()
	images := &imagesMock{}
	f := newFixture(t, users, teams, nil, WithImageGenerator(images))
	ctx := context.Background()

	want := &entities.Image{Data: []byte("png"), MIMEType: "image/png"}
	images.On("GenerateImage", mock.Anything, mock.MatchedBy(func(p entities.ImagePrompt) bool {
		return p.SenderName == "Lead A" && p.Receiver.ID == "A-2" && p.Message == "thank you" && p.Date.Equal(testNow)
	})).Return(want, nil).Once()

	img, err := f.uc.GenerateImage(ctx, "A-lead", "A-2", " thank you ")
	require.NoError(t, err)
	require.Equal(t, want, img)

	_, err = f.uc.GenerateImage(ctx, "A-lead", "A-2", "   ")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	_, err = f.uc.GenerateImage(ctx, "A-lead", "", "hi")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	images.AssertExpectations(t)
}

func TestGenerateImageFailure(t *testing.T) {
	users, teams := office()
	images := &imagesMock{}
	f := newFixture(t, users, teams, nil, WithImageGenerator(images))
	ctx := context.Background()

	images.On("GenerateImage", mock.Anything, mock.Anything).Return(nil, errors.New("blocked")).Once()
	images.On("GenerateImage", mock.Anything, mock.Anything).Return(&entities.Image{}, nil).Once()

	_, err := f.uc.GenerateImage(ctx, "A-1", "B-1", "hi")
	require.ErrorIs(t, err, entities.ErrGenerationFailed)
	_, err = f.uc.GenerateImage(ctx, "A-1", "B-1", "hi")
	require.ErrorIs(t, err, entities.ErrGenerationFailed)

	ledger, err := f.uc.Ledger(ctx)
	require.NoError(t, err)
	require.Empty(t, ledger)
}

func TestReviseImage(t *testing.T) {
	users, teams := office()
	images := &imagesMock{}
	f := newFixture(t, users, teams, nil, WithImageGenerator(images))
	ctx := context.Background()

	prior := &entities.Image{Data: []byte("v1"), MIMEType: "image/png"}
	next := &entities.Image{Data: []byte("v2"), MIMEType: "image/png"}
	images.On("ReviseImage", mock.Anything, prior, "make it blue").Return(next, nil).Once()
	images.On("ReviseImage", mock.Anything, prior, "again").Return(nil, errors.New("timeout")).Once()

	img, err := f.uc.ReviseImage(ctx, prior, "  make it blue ")
	require.NoError(t, err)
	require.Equal(t, next, img)

	_, err = f.uc.ReviseImage(ctx, prior, "again")
	require.ErrorIs(t, err, entities.ErrGenerationFailed)

	_, err = f.uc.ReviseImage(ctx, prior, " ")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	_, err = f.uc.ReviseImage(ctx, nil, "bluer")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	images.AssertExpectations(t)
}

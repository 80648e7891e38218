package domain

import (
	"context"
	"time"

	"github.com/nicles7/kudos-app/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	timeout time.Duration

	now      func() time.Time
	loc      *time.Location
	composer MessageComposer
	images   ImageGenerator
	genTO    time.Duration
	locks    *senderLocks
}

// Option customises a Usecase.
type Option func(*Usecase)

// WithClock overrides the time source used to stamp kudos and compute monthly windows.
func WithClock(now func() time.Time) Option {
	return func(u *Usecase) { u.now = now }
}

// WithLocation sets the time zone in which calendar months are evaluated.
func WithLocation(loc *time.Location) Option {
	return func(u *Usecase) {
		if loc != nil {
			u.loc = loc
		}
	}
}

// WithMessageComposer plugs the message suggestion collaborator.
func WithMessageComposer(c MessageComposer) Option {
	return func(u *Usecase) { u.composer = c }
}

// WithImageGenerator plugs the image generation collaborator.
func WithImageGenerator(g ImageGenerator) Option {
	return func(u *Usecase) { u.images = g }
}

// WithGenerationTimeout bounds calls to the generative collaborators.
func WithGenerationTimeout(d time.Duration) Option {
	return func(u *Usecase) { u.genTO = d }
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		ctx:     ctx,
		log:     log.Named("usecase"),
		repo:    repo,
		timeout: timeout,
		now:     time.Now,
		loc:     time.Local,
		genTO:   time.Minute,
		locks:   newSenderLocks(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

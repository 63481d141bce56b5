package component

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/InventorySystem_Go/internal/logger"
)

// Component is implemented by anything an Actor can host
type Component interface {
	// BeginPlay is called once when the owning actor starts
	BeginPlay(ctx context.Context) error
	// Tick is called every frame with the time since the previous frame
	Tick(ctx context.Context, dt time.Duration)
}

// Sentinel errors for actors
var (
	ErrAlreadyStarted = errors.New("actor already started")
	ErrNotStarted     = errors.New("actor not started")
)

// Actor owns a set of components and drives their lifecycle
type Actor struct {
	ID   uuid.UUID
	Name string

	mu         sync.Mutex
	components []Component
	started    bool
	lastTick   time.Time
	frames     uint64
	now        func() time.Time
}

// NewActor creates an actor with a fresh ID
func NewActor(name string) *Actor {
	return &Actor{
		ID:   uuid.New(),
		Name: name,
		now:  time.Now,
	}
}

// Attach adds a component. Components attached after Start get BeginPlay
// immediately.
func (a *Actor) Attach(ctx context.Context, c Component) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.components = append(a.components, c)
	if a.started {
		if err := c.BeginPlay(ctx); err != nil {
			return fmt.Errorf(ErrMsgBeginPlayFailed, a.Name, err)
		}
	}
	return nil
}

// Start calls BeginPlay on every attached component in attach order
func (a *Actor) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.started {
		return fmt.Errorf("%w: %s", ErrAlreadyStarted, a.Name)
	}
	for _, c := range a.components {
		if err := c.BeginPlay(ctx); err != nil {
			return fmt.Errorf(ErrMsgBeginPlayFailed, a.Name, err)
		}
	}
	a.started = true
	a.lastTick = a.now()

	logger.FromContext(ctx).Info(LogMsgActorStarted,
		"actor", a.Name,
		"actor_id", a.ID.String(),
		"components", len(a.components))
	return nil
}

// Tick advances one frame
func (a *Actor) Tick(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.started {
		return fmt.Errorf("%w: %s", ErrNotStarted, a.Name)
	}
	now := a.now()
	dt := now.Sub(a.lastTick)
	a.lastTick = now
	a.frames++

	for _, c := range a.components {
		c.Tick(ctx, dt)
	}
	return nil
}

// Frames returns the number of frames ticked so far
func (a *Actor) Frames() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frames
}

// Run ticks the actor every interval until ctx is done or maxFrames frames
// have run. A maxFrames of 0 means no limit.
func (a *Actor) Run(ctx context.Context, interval time.Duration, maxFrames uint64) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log := logger.FromContext(ctx)
	for {
		select {
		case <-ticker.C:
			if err := a.Tick(ctx); err != nil {
				return err
			}
			if maxFrames > 0 && a.Frames() >= maxFrames {
				log.Info(LogMsgActorStopped, "actor", a.Name, "frames", a.Frames())
				return nil
			}
		case <-ctx.Done():
			log.Info(LogMsgActorStopped, "actor", a.Name, "frames", a.Frames(), "reason", ctx.Err())
			return nil
		}
	}
}

// Components returns the attached components
func (a *Actor) Components() []Component {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Component, len(a.components))
	copy(out, a.components)
	return out
}

// Find returns the first attached component of type T
func Find[T Component](a *Actor) (T, bool) {
	for _, c := range a.Components() {
		if typed, ok := c.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

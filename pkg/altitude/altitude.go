package altitude

//go:generate mockgen -source=altitude.go -destination=mocks/mock_altitude.go -package=mocks

import (
	"context"
	"errors"
	"sync"
	"time"

	"liyu1981.xyz/altitude-guard/pkg/models"
	"liyu1981.xyz/altitude-guard/pkg/store"
)

var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrNoFix            = errors.New("no location fix available")
)

const DefaultFixTimeout = 30 * time.Second

// LocationProvider hands out one position fix per call. CurrentFix must
// honour ctx and return ErrPermissionDenied when access is refused.
type LocationProvider interface {
	RequestPermission(ctx context.Context) error
	CurrentFix(ctx context.Context) (*models.Fix, error)
}

// noLocation stands in for a missing provider, it refuses access.
type noLocation struct{}

func (noLocation) RequestPermission(ctx context.Context) error {
	return ErrPermissionDenied
}

func (noLocation) CurrentFix(ctx context.Context) (*models.Fix, error) {
	return nil, ErrPermissionDenied
}

// Notifier delivers user-visible alerts. Failures are logged by the caller
// and never propagated.
type Notifier interface {
	Notify(ctx context.Context, title string, body string, urgent bool) error
}

type IHistory interface {
	Append(ctx context.Context, sample models.AltitudeSample) error
	Latest() (models.AltitudeSample, bool)
	Previous() (models.AltitudeSample, bool)
	LastTwo() (prev models.AltitudeSample, curr models.AltitudeSample, ok bool)
	Since(fromMillis int64) []models.AltitudeSample
}

type IEvents interface {
	Record(ctx context.Context, events []models.AltitudeEvent) ([]models.AltitudeEvent, error)
	List(includeResolved bool) []models.AltitudeEvent
	Resolve(ctx context.Context, id string) (bool, error)
}

type ISymptoms interface {
	Append(ctx context.Context, log models.SymptomLog) error
	Latest() (models.SymptomLog, bool)
	Since(fromMillis int64) []models.SymptomLog
}

// Engine owns the monitoring state of one installation.
type Engine struct {
	Repos         *store.Repositories
	Location      LocationProvider
	Notifier      Notifier
	Scheduler     Scheduler
	NotifyLimiter *RateLimiterStore
	Now           func() time.Time
	FixTimeout    time.Duration

	History  IHistory
	Events   IEvents
	Symptoms ISymptoms

	// updateMu serializes settings updates with tracker start/stop.
	updateMu sync.Mutex
	cfgMu    sync.RWMutex
	settings models.AltitudeSettings
	profile  models.AltitudeProfile

	tracker *Tracker
}

type EngineOpts struct {
	Location      LocationProvider
	Notifier      Notifier
	Scheduler     Scheduler
	NotifyLimiter *RateLimiterStore
	Now           func() time.Time
	FixTimeout    time.Duration
}

type ServiceOpts struct {
	History  IHistory
	Events   IEvents
	Symptoms ISymptoms
}

// NewEngine loads every persisted record and wires the default stores. It
// does not start tracking, call Resume for that. Without a location provider
// tracking cannot start, as if permission were denied.
func NewEngine(ctx context.Context, repos *store.Repositories, opts EngineOpts) *Engine {
	e := &Engine{
		Repos:         repos,
		Location:      opts.Location,
		Notifier:      opts.Notifier,
		Scheduler:     opts.Scheduler,
		NotifyLimiter: opts.NotifyLimiter,
		Now:           opts.Now,
		FixTimeout:    opts.FixTimeout,
	}
	if e.Location == nil {
		e.Location = noLocation{}
	}
	if e.Scheduler == nil {
		e.Scheduler = TickerScheduler{}
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	if e.FixTimeout <= 0 {
		e.FixTimeout = DefaultFixTimeout
	}

	e.settings = repos.Settings.Load(ctx)
	e.profile = repos.Profile.Load(ctx)

	e.WithServices(ServiceOpts{
		History:  newHistoryStore(ctx, repos.History),
		Events:   newEventStore(ctx, repos.Events),
		Symptoms: newSymptomStore(ctx, repos.Symptoms),
	})
	e.tracker = &Tracker{engine: e}

	return e
}

func (e *Engine) WithServices(opts ServiceOpts) *Engine {
	if opts.History != nil {
		e.History = opts.History
	}
	if opts.Events != nil {
		e.Events = opts.Events
	}
	if opts.Symptoms != nil {
		e.Symptoms = opts.Symptoms
	}
	return e
}

func (e *Engine) Tracker() *Tracker {
	return e.tracker
}

func (e *Engine) nowMillis() int64 {
	return e.Now().UnixMilli()
}

// Package refresher runs the leaderboard pipeline: scan participant events,
// read every participant's hashrate, rank them and publish the result. When
// the chain cannot be read it falls back to cached data and, failing that, to
// a fixed placeholder.
package refresher

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/minerboard-backend/internal/clock"
	"github.com/goodnatureofminers/minerboard-backend/internal/leaderboard/model"
	"github.com/goodnatureofminers/minerboard-backend/pkg/batcher"
)

// Phase is the controller's current pipeline stage.
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseScanning    Phase = "scanning"
	PhaseFetching    Phase = "fetching"
	PhaseAggregating Phase = "aggregating"
	PhasePublishing  Phase = "publishing"
	PhaseDegraded    Phase = "degraded"
)

// Dependencies groups the collaborators of Service. Roster, CacheStatus and
// Metrics are optional.
type Dependencies struct {
	Events      EventSource
	Hashrates   HashrateSource
	Roster      RosterSource
	State       ConnectionState
	Cache       CacheRepository
	CacheStatus CacheStatusProvider
	Metrics     Metrics
}

// Service owns the served snapshot and the single refresh pipeline.
type Service struct {
	cfg         Config
	hashrates   HashrateSource
	roster      RosterSource
	state       ConnectionState
	cache       CacheRepository
	cacheStatus CacheStatusProvider
	metrics     Metrics
	logger      *zap.Logger
	now         func() time.Time
	sleep       func(context.Context, time.Duration) error

	scanner *eventScanner
	fetcher *hashrateFetcher
	agg     *aggregator

	current    atomic.Pointer[model.Snapshot]
	refreshing atomic.Bool
	background sync.WaitGroup

	mu          sync.Mutex
	phase       Phase
	degraded    bool
	checkpoint  model.ScanCheckpoint
	lastAttempt time.Time
	lastSuccess time.Time
	baseCtx     context.Context
	stopped     bool
}

// New builds the controller. It serves the placeholder until something better
// is loaded or fetched.
func New(deps Dependencies, cfg Config, logger *zap.Logger) *Service {
	return newService(deps, cfg, logger, clock.Now, clock.SleepWithContext)
}

func newService(deps Dependencies, cfg Config, logger *zap.Logger, now func() time.Time, sleep func(context.Context, time.Duration) error) *Service {
	cfg = cfg.withDefaults()
	metrics := deps.Metrics
	if metrics == nil {
		metrics = nopMetrics{}
	}

	s := &Service{
		cfg:         cfg,
		hashrates:   deps.Hashrates,
		roster:      deps.Roster,
		state:       deps.State,
		cache:       deps.Cache,
		cacheStatus: deps.CacheStatus,
		metrics:     metrics,
		logger:      logger,
		now:         now,
		sleep:       sleep,
		phase:       PhaseIdle,
		checkpoint:  model.NewScanCheckpoint(),
		baseCtx:     context.Background(),
	}
	s.scanner = newEventScanner(deps.Events, deps.Cache, cfg, sleep, logger.Named("scanner"))
	s.fetcher = newHashrateFetcher(deps.Hashrates, deps.State, metrics, sleep, logger.Named("fetcher"))
	s.agg = &aggregator{now: now, logger: logger.Named("aggregator")}

	placeholder := Placeholder(now())
	s.current.Store(&placeholder)
	return s
}

// Run loads cached state and then refreshes on every interval until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	s.mu.Lock()
	s.baseCtx = ctx
	s.stopped = false
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()
		s.background.Wait()
	}()

	s.Load(ctx)
	for {
		s.Refresh(ctx, true)
		if err := s.sleep(ctx, s.cfg.RefreshInterval); err != nil {
			return err
		}
	}
}

// Load restores the scan checkpoint and the most recent usable cached snapshot.
func (s *Service) Load(ctx context.Context) {
	cp, ok, err := s.cache.LoadCheckpoint(ctx)
	switch {
	case err != nil:
		s.logger.Warn("checkpoint not loaded", zap.Error(err))
	case ok:
		s.mu.Lock()
		if cp.LastScannedBlock >= s.checkpoint.LastScannedBlock {
			s.checkpoint = cp.Clone()
		}
		s.mu.Unlock()
		s.logger.Info("checkpoint restored",
			zap.Uint64("last_scanned_block", cp.LastScannedBlock),
			zap.Int("addresses", cp.Addresses.Len()))
	}

	if snap, ok := s.fallback(ctx, s.now()); ok {
		s.current.Store(&snap)
		s.logger.Info("cached leaderboard restored",
			zap.Int("miners", len(snap.Miners)),
			zap.Time("generated_at", snap.GeneratedAt),
			zap.Bool("partial", snap.Partial))
	}
}

// Current returns the served snapshot without blocking.
func (s *Service) Current() model.Snapshot {
	if p := s.current.Load(); p != nil {
		return *p
	}
	return Placeholder(s.now())
}

// View returns the served snapshot with status and starts a background refresh
// when the data is stale.
func (s *Service) View(ctx context.Context) model.View {
	v := s.view()
	if s.stale(s.now()) && !s.refreshing.Load() {
		s.startBackgroundRefresh()
	}
	return v
}

// startBackgroundRefresh registers with the wait group under mu, so no refresh
// starts once Run has begun waiting for them.
func (s *Service) startBackgroundRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.baseCtx.Err() != nil {
		return
	}
	base := s.baseCtx
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		s.Refresh(base, false)
	}()
}

// Refresh runs one pipeline cycle unless another is in flight or, when not
// forced, the data is fresh or the last attempt was too recent.
func (s *Service) Refresh(ctx context.Context, forced bool) model.View {
	if !s.refreshing.CompareAndSwap(false, true) {
		s.logger.Debug("refresh already in progress")
		v := s.view()
		v.Status.Refreshing = true
		return v
	}
	s.runExclusive(ctx, forced)
	return s.view()
}

func (s *Service) runExclusive(ctx context.Context, forced bool) {
	defer s.refreshing.Store(false)
	if !forced && s.throttled(s.now()) {
		return
	}
	s.refresh(ctx)
}

// Checkpoint returns a copy of the scan progress.
func (s *Service) Checkpoint() model.ScanCheckpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkpoint.Clone()
}

func (s *Service) refresh(ctx context.Context) {
	started := s.now()
	s.mu.Lock()
	s.lastAttempt = started
	s.mu.Unlock()

	snap, err := s.cycle(ctx)
	if err != nil {
		s.logger.Warn("leaderboard refresh failed", zap.Error(err))
		snap = s.degrade(ctx)
	} else {
		s.current.Store(&snap)
		s.mu.Lock()
		s.lastSuccess = s.now()
		s.degraded = false
		s.phase = PhaseIdle
		s.mu.Unlock()
		s.logger.Info("leaderboard refreshed",
			zap.Int("miners", len(snap.Miners)),
			zap.String("total_hashrate", snap.TotalHashrate.String()),
			zap.Uint64("last_scanned_block", snap.LastScannedBlock))
	}
	s.metrics.ObserveRefresh(string(snap.Source), len(snap.Miners), err, started)
}

func (s *Service) cycle(ctx context.Context) (model.Snapshot, error) {
	s.setPhase(PhaseScanning)
	scanStarted := s.now()
	scan, err := s.scanner.Scan(ctx, s.Checkpoint())
	s.storeCheckpoint(scan.Checkpoint)
	s.metrics.ObserveScan(err, scan.NewAddresses, scan.SkippedWindows, scanStarted)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("scan participants: %w", err)
	}
	// a fresh connect is only confirmed by a passing read
	s.state.ProbeSucceeded()
	if added := s.mergeRoster(ctx, scan.Checkpoint); added > 0 {
		s.storeCheckpoint(scan.Checkpoint)
	}

	addrs := scan.Checkpoint.Addresses.Ordered()
	if len(addrs) == 0 {
		return model.Snapshot{}, fmt.Errorf("scan participants: %w", ErrNoMiners)
	}

	s.setPhase(PhaseFetching)
	fetchStarted := s.now()
	res, err := s.fetch(ctx, addrs, scan.Checkpoint.LastScannedBlock)
	s.metrics.ObserveFetch(err, len(addrs), res.Failed, fetchStarted)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("fetch hashrates: %w", err)
	}
	if res.Succeeded == 0 {
		return model.Snapshot{}, fmt.Errorf("fetch hashrates: %w", ErrNoMiners)
	}

	s.setPhase(PhaseAggregating)
	total, err := s.hashrates.TotalHashrate(ctx)
	if err != nil {
		s.logger.Debug("total hashrate unavailable, summing miners", zap.Error(err))
		total = nil
	}
	snap, err := s.agg.Aggregate(res.Entries, total)
	if err != nil {
		return model.Snapshot{}, err
	}
	snap.LastScannedBlock = scan.Checkpoint.LastScannedBlock

	s.setPhase(PhasePublishing)
	if err := s.cache.SaveSnapshot(ctx, snap); err != nil {
		s.logger.Warn("leaderboard not cached", zap.Error(err))
	}
	return snap, nil
}

// mergeRoster adds the miners the contract lists itself to the discovered set.
// Values still come from the per-address reads.
func (s *Service) mergeRoster(ctx context.Context, cp model.ScanCheckpoint) int {
	if s.roster == nil || cp.Addresses == nil {
		return 0
	}
	rows, err := s.roster.Roster(ctx, rosterLimit)
	if err != nil {
		s.logger.Debug("contract roster unavailable", zap.Error(err))
		return 0
	}
	added := 0
	for _, r := range rows {
		if cp.Addresses.Add(r.Address) {
			added++
		}
	}
	if added > 0 {
		s.logger.Info("roster added miners missing from the event log", zap.Int("added", added))
	}
	return added
}

func (s *Service) fetch(ctx context.Context, addrs []model.Address, lastScannedBlock uint64) (FetchResult, error) {
	if len(addrs) <= s.cfg.PartialThreshold {
		return s.fetcher.Fetch(ctx, addrs, nil)
	}

	pub := newPartialPublisher(s.agg, s.cache, s.promotePartial, lastScannedBlock, s.logger.Named("partial"))
	b := batcher.New(s.logger.Named("partial"), batcher.Config{
		Size:     partialFlushSize,
		Interval: partialFlushInterval,
		RPS:      partialFlushRPS,
	}, pub.flush)
	b.Start(ctx)
	res, err := s.fetcher.Fetch(ctx, addrs, b)
	b.Close()
	return res, err
}

// promotePartial serves a partial snapshot only over a placeholder or a
// smaller partial.
func (s *Service) promotePartial(snap model.Snapshot) {
	for {
		cur := s.current.Load()
		if cur != nil && !cur.IsPlaceholder() && !(cur.Partial && len(cur.Miners) < len(snap.Miners)) {
			return
		}
		if s.current.CompareAndSwap(cur, &snap) {
			s.logger.Debug("partial leaderboard promoted", zap.Int("miners", len(snap.Miners)))
			return
		}
	}
}

func (s *Service) degrade(ctx context.Context) model.Snapshot {
	s.mu.Lock()
	s.phase = PhaseDegraded
	s.degraded = true
	s.mu.Unlock()

	now := s.now()
	snap, ok := s.fallback(context.WithoutCancel(ctx), now)
	if !ok {
		snap = Placeholder(now)
		s.logger.Warn("serving placeholder leaderboard")
	} else {
		s.logger.Info("serving cached leaderboard",
			zap.Time("generated_at", snap.GeneratedAt),
			zap.Bool("partial", snap.Partial))
	}
	s.current.Store(&snap)
	return snap
}

// fallback picks the newest unexpired complete snapshot, then the newest
// unexpired partial one, among the served and the cached data.
func (s *Service) fallback(ctx context.Context, now time.Time) (model.Snapshot, bool) {
	var complete, partial []model.Snapshot
	add := func(snap model.Snapshot) {
		if len(snap.Miners) == 0 || snap.IsPlaceholder() {
			return
		}
		if snap.Partial {
			partial = append(partial, snap)
		} else {
			complete = append(complete, snap)
		}
	}

	if cur := s.current.Load(); cur != nil {
		add(*cur)
	}
	if e, ok, err := s.cache.LoadSnapshot(ctx); err != nil {
		s.logger.Warn("cached leaderboard not loaded", zap.Error(err))
	} else if ok {
		add(withTimestamp(e.Payload, e.Timestamp))
	}
	if e, ok, err := s.cache.LoadPartial(ctx); err != nil {
		s.logger.Warn("cached partial leaderboard not loaded", zap.Error(err))
	} else if ok {
		add(withTimestamp(e.Payload, e.Timestamp))
	}

	for _, tier := range [][]model.Snapshot{complete, partial} {
		if snap, ok := newest(tier, now, s.cfg.CacheMaxAge); ok {
			return snap.WithSource(model.SourceCache), true
		}
	}
	return model.Snapshot{}, false
}

func withTimestamp(snap model.Snapshot, ts time.Time) model.Snapshot {
	if snap.GeneratedAt.IsZero() {
		snap.GeneratedAt = ts
	}
	return snap
}

func newest(snaps []model.Snapshot, now time.Time, maxAge time.Duration) (model.Snapshot, bool) {
	var best model.Snapshot
	found := false
	for _, snap := range snaps {
		if snap.GeneratedAt.IsZero() || snap.Age(now) >= maxAge {
			continue
		}
		if !found || snap.GeneratedAt.After(best.GeneratedAt) {
			best, found = snap, true
		}
	}
	return best, found
}

func (s *Service) throttled(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.lastAttempt.IsZero() && now.Sub(s.lastAttempt) < s.cfg.MinRetryInterval {
		return true
	}
	cur := s.current.Load()
	return !s.lastSuccess.IsZero() && now.Sub(s.lastSuccess) < s.cfg.FreshnessWindow &&
		cur != nil && !cur.IsPlaceholder()
}

func (s *Service) stale(now time.Time) bool {
	cur := s.current.Load()
	return cur == nil || cur.IsPlaceholder() || cur.Age(now) >= s.cfg.FreshnessWindow
}

func (s *Service) view() model.View {
	snap := s.Current()
	s.mu.Lock()
	phase, degraded := s.phase, s.degraded
	s.mu.Unlock()

	var cache model.CacheStatus
	if s.cacheStatus != nil {
		st := s.cacheStatus.Status()
		cache = model.CacheStatus{
			Backend:             st.Backend,
			Configured:          st.Configured,
			Available:           st.Available,
			LocalCacheAvailable: st.LocalCacheAvailable,
		}
	}

	return model.View{
		Snapshot:   snap,
		LastUpdate: snap.GeneratedAt,
		Metadata: model.Metadata{
			TotalMiners:      len(snap.Miners),
			LastScannedBlock: snap.LastScannedBlock,
			IsPartialUpdate:  snap.Partial,
		},
		Status: model.Status{
			Blockchain: model.BlockchainStatus(s.state.Connected()),
			Cache:      cache,
			Degraded:   degraded,
			Refreshing: s.refreshing.Load(),
			Phase:      string(phase),
			LastUpdate: snap.GeneratedAt,
			DataAge:    snap.Age(s.now()).Milliseconds(),
		},
	}
}

func (s *Service) setPhase(p Phase) {
	s.mu.Lock()
	s.phase = p
	s.mu.Unlock()
}

func (s *Service) storeCheckpoint(cp model.ScanCheckpoint) {
	if cp.Addresses == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if cp.LastScannedBlock >= s.checkpoint.LastScannedBlock && cp.Addresses.Len() >= s.checkpoint.Addresses.Len() {
		s.checkpoint = cp.Clone()
	}
}

type nopMetrics struct{}

func (nopMetrics) ObserveScan(error, int, int, time.Time) {}
func (nopMetrics) ObserveFetch(error, int, int, time.Time) {}
func (nopMetrics) ObserveBatch(int, time.Duration, float64) {}
func (nopMetrics) ObserveRefresh(string, int, error, time.Time) {}

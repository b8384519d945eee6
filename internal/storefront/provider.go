package storefront

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ShinnPerfume/internal/catalog"
)

const startupFetchFailedMsg = "catalog unreachable at startup, serving defaults"

// CatalogSource is the part of Client the provider depends on.
type CatalogSource interface {
	FetchByCategory(ctx context.Context, cat catalog.Category) Fetch
	InitializeAll(ctx context.Context, perfumes []catalog.Perfume) bool
}

// Snapshot is the provider state served to the shop front.
type Snapshot struct {
	HerPerfumes   []catalog.Perfume `json:"herPerfumes"`
	HimPerfumes   []catalog.Perfume `json:"himPerfumes"`
	IsLoading     bool              `json:"isLoading"`
	IsInitialized bool              `json:"isInitialized"`
}

// Provider holds the two catalog lists the shop renders. The lists start as
// the default dataset and are only ever replaced by a non-empty remote list,
// so a catalog outage never blanks the shop.
type Provider struct {
	source   CatalogSource
	defaults []catalog.Perfume
	log      *zap.Logger

	mu          sync.RWMutex
	her         []catalog.Perfume
	him         []catalog.Perfume
	refreshing  int
	initialized bool
	// generation counts started refreshes; reconcile results older than the
	// latest refresh are dropped.
	generation uint64

	start sync.Once
	ready chan struct{}
}

func NewProvider(source CatalogSource, defaults []catalog.Perfume, log *zap.Logger) *Provider {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Provider{
		source:   source,
		defaults: clonePerfumes(defaults),
		log:      log,
		ready:    make(chan struct{}),
	}
	p.her = catalog.FilterCategory(p.defaults, catalog.Her)
	p.him = catalog.FilterCategory(p.defaults, catalog.Him)
	return p
}

// Start runs the automatic reconciliation in the background. Only the first
// call has an effect.
func (p *Provider) Start(ctx context.Context) {
	p.start.Do(func() {
		go func() {
			defer close(p.ready)
			p.reconcile(ctx)
		}()
	})
}

// Ready is closed once the automatic reconciliation has settled.
func (p *Provider) Ready() <-chan struct{} { return p.ready }

func (p *Provider) reconcile(ctx context.Context) {
	p.mu.RLock()
	gen := p.generation
	p.mu.RUnlock()

	her, him := p.fetchBoth(ctx)

	if her.Empty() && him.Empty() {
		p.log.Info("catalog is empty, seeding defaults", zap.Int("count", len(p.defaults)))
		if !p.source.InitializeAll(ctx, clonePerfumes(p.defaults)) {
			p.log.Warn("seeding defaults failed, keeping local defaults")
		}
		her, him = p.fetchBoth(ctx)
	}

	if her.Failed() || him.Failed() {
		// no seed is attempted later; an empty catalog needs /admin/reset or shinnctl init
		p.log.Info(startupFetchFailedMsg,
			zap.Bool("her_failed", her.Failed()),
			zap.Bool("him_failed", him.Failed()),
		)
	}

	p.mu.Lock()
	if p.generation == gen {
		p.apply(catalog.Her, her)
		p.apply(catalog.Him, him)
	} else {
		p.log.Debug("dropping startup reconcile superseded by a refresh")
	}
	p.initialized = true
	p.mu.Unlock()
}

// Refresh re-reads both categories and replaces each list that came back
// non-empty.
func (p *Provider) Refresh(ctx context.Context) {
	p.mu.Lock()
	p.refreshing++
	p.generation++
	p.mu.Unlock()

	her, him := p.fetchBoth(ctx)

	p.mu.Lock()
	p.apply(catalog.Her, her)
	p.apply(catalog.Him, him)
	p.refreshing--
	p.mu.Unlock()
}

func (p *Provider) fetchBoth(ctx context.Context) (her, him Fetch) {
	var g errgroup.Group
	g.Go(func() error {
		her = p.source.FetchByCategory(ctx, catalog.Her)
		return nil
	})
	g.Go(func() error {
		him = p.source.FetchByCategory(ctx, catalog.Him)
		return nil
	})
	_ = g.Wait()
	return her, him
}

// apply must be called with mu held.
func (p *Provider) apply(c catalog.Category, f Fetch) {
	if len(f.Perfumes) == 0 {
		if f.Failed() {
			p.log.Debug("keeping current list", zap.String("category", string(c)), zap.Error(f.Err))
		}
		return
	}
	switch c {
	case catalog.Her:
		p.her = clonePerfumes(f.Perfumes)
	case catalog.Him:
		p.him = clonePerfumes(f.Perfumes)
	}
}

func (p *Provider) HerPerfumes() []catalog.Perfume {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clonePerfumes(p.her)
}

func (p *Provider) HimPerfumes() []catalog.Perfume {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clonePerfumes(p.him)
}

// Perfumes returns the list of one category.
func (p *Provider) Perfumes(c catalog.Category) []catalog.Perfume {
	if c == catalog.Him {
		return p.HimPerfumes()
	}
	return p.HerPerfumes()
}

func (p *Provider) IsLoading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.refreshing > 0
}

func (p *Provider) IsInitialized() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.initialized
}

func (p *Provider) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Snapshot{
		HerPerfumes:   clonePerfumes(p.her),
		HimPerfumes:   clonePerfumes(p.him),
		IsLoading:     p.refreshing > 0,
		IsInitialized: p.initialized,
	}
}

func clonePerfumes(in []catalog.Perfume) []catalog.Perfume {
	out := make([]catalog.Perfume, len(in))
	copy(out, in)
	return out
}

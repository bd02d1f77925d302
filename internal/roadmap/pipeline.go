package roadmap

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jerrychoi/bookroad/internal/model"
	"github.com/jerrychoi/bookroad/internal/normalize"
	"github.com/jerrychoi/bookroad/pkg/aladin"
)

// Listing scan defaults. Bestseller pages are fetched one at a time to
// keep load on the listing endpoint predictable; the curated matches
// fan out instead.
const (
	DefaultBestsellerPages = 6
	DefaultListingPageSize = 50
	DefaultExtendedLimit   = 24
	DefaultPerStepLimit    = 10
)

// ErrSuperseded reports that a newer Refresh started before this one
// finished; the superseded run's result is discarded, never published.
var ErrSuperseded = errors.New("refresh superseded by a newer run")

// Matcher resolves one curated entry against the catalog.
type Matcher interface {
	FindMatch(ctx context.Context, entry model.CuratedBook) (*aladin.Book, error)
}

// Pipeline reconciles a subject's curated roadmap against the live
// catalog and publishes the result as an immutable snapshot. Refresh
// calls may overlap; only the newest run is allowed to publish, and a
// failed run leaves the previous snapshot in place.
type Pipeline struct {
	matcher Matcher
	api     aladin.Client

	pages         int
	pageSize      int
	extendedLimit int
	perStepLimit  int

	mu     sync.Mutex
	runSeq uint64
	cancel context.CancelFunc
	latest *model.Snapshot
}

// PipelineOption adjusts scan limits.
type PipelineOption func(*Pipeline)

// WithScanLimits overrides the listing scan limits. Values below 1 keep
// their defaults.
func WithScanLimits(pages, pageSize, extendedLimit, perStepLimit int) PipelineOption {
	return func(p *Pipeline) {
		if pages > 0 {
			p.pages = pages
		}
		if pageSize > 0 {
			p.pageSize = pageSize
		}
		if extendedLimit > 0 {
			p.extendedLimit = extendedLimit
		}
		if perStepLimit > 0 {
			p.perStepLimit = perStepLimit
		}
	}
}

// NewPipeline creates a Pipeline with the default scan limits.
func NewPipeline(matcher Matcher, api aladin.Client, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		matcher:       matcher,
		api:           api,
		pages:         DefaultBestsellerPages,
		pageSize:      DefaultListingPageSize,
		extendedLimit: DefaultExtendedLimit,
		perStepLimit:  DefaultPerStepLimit,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Latest returns the most recently published snapshot, nil before the
// first successful Refresh.
func (p *Pipeline) Latest() *model.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latest
}

// Refresh runs the full reconciliation for subject: match every curated
// entry, then aggregate, filter and classify the bestseller listing into
// extended recommendations. Starting a Refresh cancels any run still in
// flight; the older run ends with ErrSuperseded and does not publish.
func (p *Pipeline) Refresh(ctx context.Context, subject model.Subject) (*model.Snapshot, error) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.runSeq++
	token := p.runSeq
	p.mu.Unlock()
	defer cancel()

	log := zap.L().With(zap.String("subject", string(subject)))
	log.Info("roadmap: refresh started")

	snap, err := p.build(runCtx, subject)

	p.mu.Lock()
	defer p.mu.Unlock()
	if token != p.runSeq {
		log.Debug("roadmap: stale run discarded")
		return nil, ErrSuperseded
	}
	if err != nil {
		// The previous snapshot stays published.
		return nil, eris.Wrapf(err, "roadmap: refresh %s", subject)
	}
	p.latest = snap
	log.Info("roadmap: refresh published")
	return snap, nil
}

func (p *Pipeline) build(ctx context.Context, subject model.Subject) (*model.Snapshot, error) {
	resolved, err := p.matchCurated(ctx, subject)
	if err != nil {
		return nil, err
	}

	snap := &model.Snapshot{Subject: subject}
	for _, r := range resolved {
		idx := r.Curated.BucketIndex()
		snap.Curated[idx] = append(snap.Curated[idx], r)
	}

	extended, err := p.loadExtended(ctx, subject, resolved)
	if err != nil {
		return nil, err
	}
	snap.Extended = extended
	return snap, nil
}

// matchCurated resolves every curated entry concurrently. Entries come
// back in curated order (step, then title) because each goroutine writes
// its own slot.
func (p *Pipeline) matchCurated(ctx context.Context, subject model.Subject) ([]model.ResolvedBook, error) {
	entries := Books(subject)
	resolved := make([]model.ResolvedBook, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			matched, err := p.matcher.FindMatch(gctx, entry)
			if err != nil {
				return err
			}
			resolved[i] = model.ResolvedBook{Curated: entry, Matched: matched}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "match curated entries")
	}
	return resolved, nil
}

// loadExtended scans the bestseller listing for subject-related books
// the curated roadmap does not already cover, and classifies them into
// steps.
func (p *Pipeline) loadExtended(ctx context.Context, subject model.Subject, resolved []model.ResolvedBook) ([model.StepCount][]aladin.Book, error) {
	var extended [model.StepCount][]aladin.Book

	// Curated coverage, keyed by folded display title and folded ISBN.
	titleKeys := make(map[string]struct{}, len(resolved))
	isbnKeys := make(map[string]struct{}, len(resolved))
	for _, r := range resolved {
		titleKeys[normalize.Fold(r.Title())] = struct{}{}
		if isbn := r.ISBN13(); isbn != "" {
			isbnKeys[normalize.Fold(isbn)] = struct{}{}
		}
	}

	var listed []aladin.Book
	for page := 1; page <= p.pages; page++ {
		env, err := p.api.ListBestsellers(ctx, page, p.pageSize)
		if err != nil {
			return extended, eris.Wrapf(err, "bestseller page %d", page)
		}
		listed = append(listed, env.Item...)
	}

	candidates := filterBySubject(listed, subject, p.extendedLimit)

	kept := 0
	for _, b := range candidates {
		if _, dup := titleKeys[normalize.Fold(b.Title)]; dup {
			continue
		}
		if isbn := normalize.Fold(b.BestISBN()); isbn != "" {
			if _, dup := isbnKeys[isbn]; dup {
				continue
			}
		}
		idx := Classify(b, subject)
		extended[idx] = append(extended[idx], b)
		kept++
	}

	for i := range extended {
		if len(extended[i]) > p.perStepLimit {
			extended[i] = extended[i][:p.perStepLimit]
		}
	}

	zap.L().Debug("roadmap: extended recommendations assembled",
		zap.String("subject", string(subject)),
		zap.Int("listed", len(listed)),
		zap.Int("related", len(candidates)),
		zap.Int("kept", kept),
	)
	return extended, nil
}

// filterBySubject keeps listing-order books whose author, title or
// description mentions a subject filter token, stopping at limit.
func filterBySubject(items []aladin.Book, subject model.Subject, limit int) []aladin.Book {
	tokens := subject.FilterTokens()

	var out []aladin.Book
	for _, b := range items {
		hay := strings.ToLower(strings.Join([]string{b.Author, b.Title, b.Description}, " "))
		for _, tok := range tokens {
			if strings.Contains(hay, strings.ToLower(tok)) {
				out = append(out, b)
				break
			}
		}
		if len(out) >= limit {
			break
		}
	}
	return out
}

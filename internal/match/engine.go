// Package match resolves one curated entry against live Aladin search
// results: a staged fallback search plus a scored candidate pick.
package match

import (
	"context"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/jerrychoi/bookroad/internal/model"
	"github.com/jerrychoi/bookroad/internal/normalize"
	"github.com/jerrychoi/bookroad/pkg/aladin"
)

// Scoring policy. The weights and threshold are tuned constants, not
// derived values: a title match alone is sufficient to accept, and so is
// author + both metadata signals (3+1+1).
const (
	scoreTitleMatch  = 5
	scoreAuthorMatch = 3
	scoreMetaSignal  = 1
	acceptThreshold  = 5
)

// DefaultPageSize is the ItemSearch page size used for every stage.
const DefaultPageSize = 30

// Engine finds the best catalog match for curated entries.
type Engine struct {
	api      aladin.Client
	pageSize int
}

// NewEngine creates an Engine over the given catalog client.
func NewEngine(api aladin.Client) *Engine {
	return &Engine{api: api, pageSize: DefaultPageSize}
}

// FindMatch runs the staged search for entry: Keyword "title author",
// then Title, then Author, returning the first stage's accepted
// candidate. No acceptable candidate is a normal nil result, not an
// error; a transport or decode failure at any stage aborts the whole
// attempt.
func (e *Engine) FindMatch(ctx context.Context, entry model.CuratedBook) (*aladin.Book, error) {
	stages := []struct {
		query string
		qt    aladin.QueryType
	}{
		{entry.Title + " " + entry.Author, aladin.QueryTypeKeyword},
		{entry.Title, aladin.QueryTypeTitle},
		{entry.Author, aladin.QueryTypeAuthor},
	}

	for _, stage := range stages {
		env, err := e.api.SearchItems(ctx, stage.query, stage.qt, 1, e.pageSize)
		if err != nil {
			return nil, eris.Wrapf(err, "match: %s search %q", stage.qt, stage.query)
		}
		if best := pickBest(env.Item, entry); best != nil {
			zap.L().Debug("match: accepted candidate",
				zap.String("curated", entry.Title),
				zap.String("stage", string(stage.qt)),
				zap.String("matched", best.Title),
			)
			return best, nil
		}
	}

	zap.L().Debug("match: no acceptable candidate", zap.String("curated", entry.Title))
	return nil, nil
}

// pickBest scores every candidate and returns the highest scorer at or
// above the threshold. The sort is stable on score only, so ties keep
// the API's result order.
func pickBest(items []aladin.Book, entry model.CuratedBook) *aladin.Book {
	if len(items) == 0 {
		return nil
	}

	wantedTitles := make([]string, 0, 1+len(entry.AltTitles))
	wantedTitles = append(wantedTitles, normalize.Fold(entry.Title))
	for _, alt := range entry.AltTitles {
		wantedTitles = append(wantedTitles, normalize.Fold(alt))
	}
	wantedAuthor := normalize.Fold(entry.Author)

	type scored struct {
		book  aladin.Book
		score int
	}
	ranked := make([]scored, len(items))
	for i, b := range items {
		ranked[i] = scored{book: b, score: score(b, wantedTitles, wantedAuthor)}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	for i := range ranked {
		if ranked[i].score >= acceptThreshold {
			return &ranked[i].book
		}
	}
	return nil
}

func score(b aladin.Book, wantedTitles []string, wantedAuthor string) int {
	title := normalize.Fold(b.Title)
	author := normalize.Fold(b.Author)

	s := 0
	for _, want := range wantedTitles {
		if titlesOverlap(title, want) {
			s += scoreTitleMatch
			break
		}
	}
	if wantedAuthor != "" && strings.Contains(author, wantedAuthor) {
		s += scoreAuthorMatch
	}
	if len(b.ISBN13) == 13 {
		s += scoreMetaSignal
	}
	if b.Cover != "" {
		s += scoreMetaSignal
	}
	return s
}

// titlesOverlap holds when either normalized title contains the other
// (equality included). Empty titles never overlap: a candidate with no
// title must not score as a match.
func titlesOverlap(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

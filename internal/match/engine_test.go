package match

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerrychoi/bookroad/internal/model"
	"github.com/jerrychoi/bookroad/pkg/aladin"
)

type call struct {
	query string
	qt    aladin.QueryType
}

// fakeClient serves canned result pages keyed by query type.
type fakeClient struct {
	calls   []call
	pages   map[aladin.QueryType][]aladin.Book
	failAll error
}

func (f *fakeClient) SearchItems(_ context.Context, query string, qt aladin.QueryType, _, _ int) (*aladin.Envelope, error) {
	f.calls = append(f.calls, call{query: query, qt: qt})
	if f.failAll != nil {
		return nil, f.failAll
	}
	return &aladin.Envelope{Item: f.pages[qt]}, nil
}

func (f *fakeClient) ListBestsellers(context.Context, int, int) (*aladin.Envelope, error) {
	return &aladin.Envelope{}, nil
}

var platoRepublic = model.CuratedBook{
	Subject: model.SubjectPlato,
	Step:    2,
	Title:   "국가",
	Author:  "플라톤",
	Role:    model.RoleCore,
}

func TestFindMatchAcceptsStrongStageOneCandidate(t *testing.T) {
	api := &fakeClient{pages: map[aladin.QueryType][]aladin.Book{
		aladin.QueryTypeKeyword: {
			{Title: "윤리학", Author: "아리스토텔레스"},
			{Title: "플라톤 국가", Author: "플라톤", ISBN13: "9788900000000", Cover: "http://x/y.jpg"},
		},
	}}

	got, err := NewEngine(api).FindMatch(context.Background(), platoRepublic)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "플라톤 국가", got.Title)

	// Accepted in stage one: no fallback queries issued.
	require.Len(t, api.calls, 1)
	assert.Equal(t, "국가 플라톤", api.calls[0].query)
	assert.Equal(t, aladin.QueryTypeKeyword, api.calls[0].qt)
}

func TestFindMatchFallsThroughAllStages(t *testing.T) {
	api := &fakeClient{pages: map[aladin.QueryType][]aladin.Book{
		aladin.QueryTypeKeyword: {{Title: "윤리학", Author: "아리스토텔레스"}},
		aladin.QueryTypeTitle:   {{Title: "전혀 다른 책", Author: "무명"}},
		aladin.QueryTypeAuthor:  {},
	}}

	got, err := NewEngine(api).FindMatch(context.Background(), platoRepublic)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.Len(t, api.calls, 3)
	assert.Equal(t, aladin.QueryTypeKeyword, api.calls[0].qt)
	assert.Equal(t, aladin.QueryTypeTitle, api.calls[1].qt)
	assert.Equal(t, "국가", api.calls[1].query)
	assert.Equal(t, aladin.QueryTypeAuthor, api.calls[2].qt)
	assert.Equal(t, "플라톤", api.calls[2].query)
}

func TestFindMatchErrorAbortsWithoutFallback(t *testing.T) {
	sentinel := errors.New("connection refused")
	api := &fakeClient{failAll: sentinel}

	_, err := NewEngine(api).FindMatch(context.Background(), platoRepublic)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sentinel))
	assert.Len(t, api.calls, 1)
}

func TestPickBestScoring(t *testing.T) {
	// Title containment +5, author substring +3,
	// 13-char ISBN +1, cover +1 = 10.
	strong := aladin.Book{Title: "플라톤 국가", Author: "플라톤", ISBN13: "9788900000000", Cover: "http://x/y.jpg"}
	miss := aladin.Book{Title: "윤리학", Author: "아리스토텔레스"}

	assert.Equal(t, 10, score(strong, []string{"국가"}, "플라톤"))
	assert.Equal(t, 0, score(miss, []string{"국가"}, "플라톤"))
}

func TestPickBestRejectsBelowThreshold(t *testing.T) {
	// Author (3) + ISBN (1) = 4: best candidate, still rejected.
	items := []aladin.Book{
		{Title: "플라톤 평전", Author: "다른저자"},
		{Title: "서양 철학 이야기", Author: "플라톤 외", ISBN13: "9788911111111"},
	}
	assert.Nil(t, pickBest(items, platoRepublic))
}

func TestPickBestAuthorPlusMetadataQualifies(t *testing.T) {
	// 3+1+1 = 5 meets the threshold without a title match.
	items := []aladin.Book{
		{Title: "고대 철학 선집", Author: "플라톤", ISBN13: "9788922222222", Cover: "http://c/1.jpg"},
	}
	got := pickBest(items, platoRepublic)
	require.NotNil(t, got)
	assert.Equal(t, "고대 철학 선집", got.Title)
}

func TestPickBestStableTieKeepsInputOrder(t *testing.T) {
	// Both score 5 via title overlap; the earlier result must win.
	items := []aladin.Book{
		{Title: "국가 (상)", Author: "무명"},
		{Title: "국가 (하)", Author: "무명"},
	}
	got := pickBest(items, platoRepublic)
	require.NotNil(t, got)
	assert.Equal(t, "국가 (상)", got.Title)
}

func TestPickBestMatchesAltTitles(t *testing.T) {
	entry := platoRepublic
	entry.AltTitles = []string{"Republic", "플라톤 국가"}

	items := []aladin.Book{
		{Title: "The Republic", Author: "Plato"},
	}
	got := pickBest(items, entry)
	require.NotNil(t, got)
	assert.Equal(t, "The Republic", got.Title)
}

func TestPickBestEmptyInput(t *testing.T) {
	assert.Nil(t, pickBest(nil, platoRepublic))
}

func TestPickBestIgnoresEmptyCandidateTitle(t *testing.T) {
	// An untitled row must not ride a contains("") match to +5.
	items := []aladin.Book{
		{Title: "", Author: "누군가", ISBN13: "9788933333333", Cover: "c"},
	}
	assert.Nil(t, pickBest(items, platoRepublic))
}

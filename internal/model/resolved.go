package model

import "github.com/jerrychoi/bookroad/pkg/aladin"

// ResolvedBook pairs a curated entry with its best catalog match, if
// any. Display accessors prefer the matched item and fall back to the
// curated data, which guarantees a non-empty title and author.
type ResolvedBook struct {
	Curated CuratedBook
	Matched *aladin.Book
}

func (r ResolvedBook) Title() string {
	if r.Matched != nil && r.Matched.Title != "" {
		return r.Matched.Title
	}
	return r.Curated.Title
}

func (r ResolvedBook) Author() string {
	if r.Matched != nil && r.Matched.Author != "" {
		return r.Matched.Author
	}
	return r.Curated.Author
}

// ISBN13 returns the matched item's best ISBN, empty when unmatched.
func (r ResolvedBook) ISBN13() string {
	if r.Matched == nil {
		return ""
	}
	return r.Matched.BestISBN()
}

func (r ResolvedBook) Cover() string {
	if r.Matched == nil {
		return ""
	}
	return r.Matched.Cover
}

func (r ResolvedBook) Link() string {
	if r.Matched == nil {
		return ""
	}
	return r.Matched.Link
}

func (r ResolvedBook) PriceSales() int {
	if r.Matched == nil {
		return 0
	}
	return r.Matched.PriceSales
}

// Snapshot is one reconciliation run's published output: curated and
// extended step buckets. A snapshot is immutable once published and is
// replaced atomically by the next successful run.
type Snapshot struct {
	Subject  Subject
	Curated  [StepCount][]ResolvedBook
	Extended [StepCount][]aladin.Book
}

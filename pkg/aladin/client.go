// Package aladin provides a client for the Aladin TTB open API
// (ItemSearch / ItemList, output=js, Version=20131101).
package aladin

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// QueryType selects the Aladin search mode.
type QueryType string

const (
	QueryTypeKeyword    QueryType = "Keyword"
	QueryTypeTitle      QueryType = "Title"
	QueryTypeAuthor     QueryType = "Author"
	QueryTypeBestseller QueryType = "Bestseller"
)

const (
	// DefaultBaseURL is the upstream TTB API root.
	DefaultBaseURL = "http://www.aladin.co.kr/ttb/api"

	// ProxyPathPrefix is the route segment the credential-hiding proxy
	// serves under. Proxy mode requests carry no ttbkey.
	ProxyPathPrefix = "aladin"

	apiVersion   = "20131101"
	outputFormat = "js"
	searchTarget = "Book"

	pathItemSearch = "ItemSearch.aspx"
	pathItemList   = "ItemList.aspx"
)

// Fetcher retrieves the raw response body for a fully built request URL.
// The response cache satisfies this; tests substitute a double.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// Endpoint describes one Aladin request before URL resolution.
type Endpoint struct {
	Path       string
	Query      string
	QueryType  QueryType
	Start      int // 1-based page index
	MaxResults int
}

// ItemSearch builds a book search endpoint.
func ItemSearch(query string, qt QueryType, start, maxResults int) Endpoint {
	return Endpoint{
		Path:       pathItemSearch,
		Query:      query,
		QueryType:  qt,
		Start:      start,
		MaxResults: maxResults,
	}
}

// BestsellerList builds one page of the generic bestseller listing.
func BestsellerList(start, maxResults int) Endpoint {
	return Endpoint{
		Path:       pathItemList,
		QueryType:  QueryTypeBestseller,
		Start:      start,
		MaxResults: maxResults,
	}
}

// URL resolves the endpoint against base. When ttbKey is empty the key
// parameter is omitted entirely (proxy mode injects it server-side).
func (e Endpoint) URL(base, ttbKey string) string {
	q := url.Values{}
	q.Set("output", outputFormat)
	q.Set("Version", apiVersion)
	if ttbKey != "" {
		q.Set("ttbkey", ttbKey)
	}
	if e.Path == pathItemSearch {
		q.Set("Query", e.Query)
	}
	q.Set("QueryType", string(e.QueryType))
	q.Set("SearchTarget", searchTarget)
	q.Set("start", strconv.Itoa(e.Start))
	q.Set("MaxResults", strconv.Itoa(e.MaxResults))

	return strings.TrimRight(base, "/") + "/" + e.Path + "?" + q.Encode()
}

// Envelope is the common search/list response. Every field is optional;
// a missing item array means zero results, not an error.
type Envelope struct {
	Title        string `json:"title"`
	Link         string `json:"link"`
	TotalResults int    `json:"totalResults"`
	StartIndex   int    `json:"startIndex"`
	ItemsPerPage int    `json:"itemsPerPage"`
	Item         []Book `json:"item"`
}

// Book is one catalog row. External data is not guaranteed complete, so
// every field may be zero.
type Book struct {
	ItemID        int    `json:"itemId"`
	Title         string `json:"title"`
	Link          string `json:"link"`
	Author        string `json:"author"`
	Publisher     string `json:"publisher"`
	ISBN          string `json:"isbn"`
	ISBN13        string `json:"isbn13"`
	Cover         string `json:"cover"`
	PriceStandard int    `json:"priceStandard"`
	PriceSales    int    `json:"priceSales"`
	Description   string `json:"description"`
}

// Key returns a stable dedup identity: the numeric id when present,
// otherwise a content-derived fallback.
func (b Book) Key() string {
	if b.ItemID != 0 {
		return "id:" + strconv.Itoa(b.ItemID)
	}
	return "c:" + strings.ToLower(b.Title) + "|" + strings.ToLower(b.Author) + "|" + b.bestISBN()
}

// BestISBN prefers the 13-digit ISBN over the legacy one.
func (b Book) BestISBN() string { return b.bestISBN() }

func (b Book) bestISBN() string {
	if b.ISBN13 != "" {
		return b.ISBN13
	}
	return b.ISBN
}

// Client defines the Aladin catalog operations.
type Client interface {
	// SearchItems runs one ItemSearch page.
	SearchItems(ctx context.Context, query string, qt QueryType, start, maxResults int) (*Envelope, error)
	// ListBestsellers runs one ItemList Bestseller page.
	ListBestsellers(ctx context.Context, start, maxResults int) (*Envelope, error)
}

// Option configures the client.
type Option func(*client)

// WithBaseURL overrides the API root (proxy deployments, tests).
func WithBaseURL(base string) Option {
	return func(c *client) { c.baseURL = base }
}

// WithProxy targets a credential-hiding proxy: requests go to
// <base>/aladin/<endpoint> and carry no ttbkey.
func WithProxy(base string) Option {
	return func(c *client) {
		c.baseURL = strings.TrimRight(base, "/") + "/" + ProxyPathPrefix
		c.ttbKey = ""
	}
}

type client struct {
	fetch   Fetcher
	baseURL string
	ttbKey  string
}

// NewClient creates a client that issues requests through fetch.
func NewClient(fetch Fetcher, ttbKey string, opts ...Option) Client {
	c := &client{
		fetch:   fetch,
		baseURL: DefaultBaseURL,
		ttbKey:  ttbKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) SearchItems(ctx context.Context, query string, qt QueryType, start, maxResults int) (*Envelope, error) {
	return c.do(ctx, ItemSearch(query, qt, start, maxResults))
}

func (c *client) ListBestsellers(ctx context.Context, start, maxResults int) (*Envelope, error) {
	return c.do(ctx, BestsellerList(start, maxResults))
}

func (c *client) do(ctx context.Context, e Endpoint) (*Envelope, error) {
	rawURL := e.URL(c.baseURL, c.ttbKey)

	body, err := c.fetch.Fetch(ctx, rawURL)
	if err != nil {
		return nil, eris.Wrapf(err, "aladin: %s", e.Path)
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, eris.Wrapf(wrapDecode(err), "aladin: decode %s response", e.Path)
	}
	return &env, nil
}

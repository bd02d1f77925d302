package model

// Role labels a curated entry's place within its step.
const (
	RoleIntroduction = "입문"
	RoleCore         = "핵심"
	RoleAdvanced     = "심화"
)

// CuratedBook is one statically authored recommendation. Curated data is
// loaded once at startup and never mutated; the catalog API only
// decorates it with cover, price, link and ISBN.
type CuratedBook struct {
	Subject Subject
	Step    int // 1..StepCount
	Title   string
	Author  string
	Role    string
	Reason  string
	// AltTitles cover translation and edition differences for match
	// fallback.
	AltTitles []string
}

// BucketIndex maps the declared step number into a valid bucket,
// clamping out-of-range values.
func (c CuratedBook) BucketIndex() int {
	idx := c.Step - 1
	if idx < 0 {
		return 0
	}
	if idx >= StepCount {
		return StepCount - 1
	}
	return idx
}

package tier

import (
	"slices"

	"pos-loyalty/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Catalog is an immutable, validated tier configuration ordered by SortOrder.
type Catalog struct {
	tiers []Tier
	rank  map[string]int
}

// NewCatalog sorts tiers and checks that they partition [0, inf) with no gaps or
// overlaps: the first starts at 0, each Max equals the next Min, the last is open.
func NewCatalog(tiers []Tier) (*Catalog, error) {
	if len(tiers) == 0 {
		return nil, errs.Wrap(errs.ErrInvalidTierCatalog, "no tiers configured")
	}

	sorted := slices.Clone(tiers)
	slices.SortStableFunc(sorted, func(a, b Tier) int {
		return int(a.SortOrder) - int(b.SortOrder)
	})

	rank := make(map[string]int, len(sorted))
	for i, t := range sorted {
		if t.Key == "" {
			return nil, errs.Wrapf(errs.ErrInvalidTierCatalog, "tier at position %d has no key", i)
		}
		if _, dup := rank[t.Key]; dup {
			return nil, errs.Wrapf(errs.ErrInvalidTierCatalog, "duplicate tier key %q", t.Key)
		}
		rank[t.Key] = i

		if t.EarningMultiplier.IsNegative() || t.RedemptionMultiplier.IsNegative() {
			return nil, errs.Wrapf(errs.ErrInvalidTierCatalog, "tier %q has a negative multiplier", t.Key)
		}
		if t.MinSpend.IsNegative() {
			return nil, errs.Wrapf(errs.ErrInvalidTierCatalog, "tier %q has a negative minimum spend", t.Key)
		}
		if i > 0 && sorted[i-1].SortOrder == t.SortOrder {
			return nil, errs.Wrapf(errs.ErrInvalidTierCatalog, "tiers %q and %q share sort order %d",
				sorted[i-1].Key, t.Key, t.SortOrder)
		}

		last := i == len(sorted)-1
		switch {
		case i == 0 && t.MinPoints != 0:
			return nil, errs.Wrapf(errs.ErrInvalidTierCatalog, "lowest tier %q must start at 0", t.Key)
		case last && t.MaxPoints != nil:
			return nil, errs.Wrapf(errs.ErrInvalidTierCatalog, "top tier %q must not have a maximum", t.Key)
		case !last && t.MaxPoints == nil:
			return nil, errs.Wrapf(errs.ErrInvalidTierCatalog, "tier %q needs a maximum", t.Key)
		case !last && *t.MaxPoints <= t.MinPoints:
			return nil, errs.Wrapf(errs.ErrInvalidTierCatalog, "tier %q is empty", t.Key)
		case !last && *t.MaxPoints != sorted[i+1].MinPoints:
			return nil, errs.Wrapf(errs.ErrInvalidTierCatalog, "gap or overlap between %q and %q",
				t.Key, sorted[i+1].Key)
		}
	}

	return &Catalog{tiers: sorted, rank: rank}, nil
}

func (c *Catalog) Tiers() []Tier {
	return slices.Clone(c.tiers)
}

func (c *Catalog) Lowest() Tier {
	return c.tiers[0]
}

func (c *Catalog) ByKey(key string) (Tier, bool) {
	i, ok := c.rank[key]
	if !ok {
		return Tier{}, false
	}
	return c.tiers[i], true
}

// Rank is the position of key in sort order; higher is better.
func (c *Catalog) Rank(key string) (int, bool) {
	i, ok := c.rank[key]
	return i, ok
}

// Evaluate returns the highest tier whose point and spend minimums are both met.
// The lowest tier always qualifies for non-negative inputs with zero min spend;
// otherwise the lowest tier is the floor.
func (c *Catalog) Evaluate(lifetimePoints int64, lifetimeSpend decimal.Decimal) Tier {
	best := c.tiers[0]
	for _, t := range c.tiers {
		if t.qualifies(lifetimePoints, lifetimeSpend) {
			best = t
		}
	}
	return best
}

type Decision struct {
	Tier     Tier
	Previous string
	Changed  bool
}

// Decide applies the demotion policy to a fresh evaluation. Without demotion a
// lower evaluated tier keeps the stored one. An unknown stored key is replaced.
func (c *Catalog) Decide(currentKey string, lifetimePoints int64, lifetimeSpend decimal.Decimal, allowDemotion bool) Decision {
	evaluated := c.Evaluate(lifetimePoints, lifetimeSpend)

	current, known := c.ByKey(currentKey)
	if !known {
		return Decision{Tier: evaluated, Previous: currentKey, Changed: true}
	}
	if c.rank[evaluated.Key] < c.rank[current.Key] && !allowDemotion {
		return Decision{Tier: current, Previous: currentKey, Changed: false}
	}
	return Decision{Tier: evaluated, Previous: currentKey, Changed: evaluated.Key != currentKey}
}

// Meets reports whether accountTier is at or above minTier.
func (c *Catalog) Meets(accountTier, minTier string) (bool, error) {
	minRank, ok := c.rank[minTier]
	if !ok {
		return false, errs.Wrapf(errs.ErrTierNotFound, "reward requires unknown tier %q", minTier)
	}
	accRank, ok := c.rank[accountTier]
	if !ok {
		return false, nil
	}
	return accRank >= minRank, nil
}

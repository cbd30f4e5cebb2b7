package session

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/radprep/internal/exam"
	"github.com/abhisek/radprep/internal/ranker"
	"github.com/abhisek/radprep/internal/scheduler"
)

// DefaultWeakThreshold is the section accuracy below which a section
// counts as weak for ModeWeakArea.
const DefaultWeakThreshold = 0.75

// DefaultItemTime converts a time budget into an item count.
const DefaultItemTime = 90 * time.Second

// Config holds composition settings.
type Config struct {
	ItemTime      time.Duration
	WeakThreshold float64
}

// DefaultConfig returns sensible composition defaults.
func DefaultConfig() Config {
	return Config{
		ItemTime:      DefaultItemTime,
		WeakThreshold: DefaultWeakThreshold,
	}
}

// ItemSource supplies a snapshot of all schedulable items, ordered by
// item id.
type ItemSource interface {
	Items() []scheduler.Item
}

// WeaknessSource supplies the sections currently below an accuracy
// threshold, weakest first.
type WeaknessSource interface {
	WeakSections(threshold float64) []exam.SectionID
}

// Composer assembles bounded study sessions and exam simulations from
// ranked items.
type Composer struct {
	cfg    Config
	table  *exam.Table
	items  ItemSource
	ranker *ranker.Ranker
	weak   WeaknessSource
}

// NewComposer creates a Composer.
func NewComposer(table *exam.Table, items ItemSource, rk *ranker.Ranker, weak WeaknessSource, cfg Config) *Composer {
	if cfg.ItemTime <= 0 {
		cfg.ItemTime = DefaultItemTime
	}
	if cfg.WeakThreshold <= 0 {
		cfg.WeakThreshold = DefaultWeakThreshold
	}
	return &Composer{cfg: cfg, table: table, items: items, ranker: rk, weak: weak}
}

// Compose builds a SessionPlan for the request. The only
// nondeterminism is the seeded RNG recorded on the plan, so an
// identical store snapshot, request, and seed reproduce the plan
// exactly. A context deadline stops composition early and returns the
// partial plan with Truncated set rather than blocking.
func (c *Composer) Compose(ctx context.Context, req Request) (*Plan, error) {
	now := req.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	count := req.Count
	if count == 0 && req.TimeBudget > 0 {
		count = int(req.TimeBudget / c.cfg.ItemTime)
	}
	if count <= 0 {
		return nil, fmt.Errorf("compose: item count must be positive")
	}

	plan := &Plan{
		ID:             uuid.New(),
		Mode:           req.Mode,
		RequestedCount: count,
		Seed:           req.Seed,
		GeneratedAt:    now,
	}

	pool := c.items.Items()

	switch req.Mode {
	case ModePractice:
		c.fillByPriority(ctx, plan, pool, count, now)

	case ModeWeakArea:
		threshold := req.WeakThreshold
		if threshold <= 0 {
			threshold = c.cfg.WeakThreshold
		}
		weak := make(map[exam.SectionID]bool)
		for _, id := range c.weak.WeakSections(threshold) {
			weak[id] = true
		}
		var candidates []scheduler.Item
		for _, it := range pool {
			if weak[it.Section] {
				candidates = append(candidates, it)
			}
		}
		c.fillByPriority(ctx, plan, candidates, count, now)

	case ModeSectionFocus:
		if _, ok := c.table.Get(req.Section); !ok {
			return nil, fmt.Errorf("compose: unknown section %q", req.Section)
		}
		var candidates []scheduler.Item
		for _, it := range pool {
			if it.Section == req.Section {
				candidates = append(candidates, it)
			}
		}
		c.fillByPriority(ctx, plan, candidates, count, now)

	case ModeExamSimulation:
		c.fillSimulation(ctx, plan, pool, count, now)

	default:
		return nil, fmt.Errorf("compose: unknown mode %q", req.Mode)
	}

	if missing := count - len(plan.ItemIDs); missing > 0 {
		plan.Shortfall = missing
	}
	return plan, nil
}

// fillByPriority takes the top count items by priority, stable on item
// id for equal scores.
func (c *Composer) fillByPriority(ctx context.Context, plan *Plan, candidates []scheduler.Item, count int, now time.Time) {
	ranked := c.ranker.Rank(candidates, now)
	for _, sc := range ranked {
		if len(plan.ItemIDs) >= count {
			break
		}
		if deadlineExceeded(ctx) {
			plan.Truncated = true
			break
		}
		plan.ItemIDs = append(plan.ItemIDs, sc.Item.ID)
	}
}

// fillSimulation fills per-section quotas by priority, then gives any
// unfillable slots to a seeded random draw (without replacement) from
// the rest of the pool. Partial section fills are recorded on the
// plan, not treated as failures.
func (c *Composer) fillSimulation(ctx context.Context, plan *Plan, pool []scheduler.Item, count int, now time.Time) {
	bySection := make(map[exam.SectionID][]scheduler.Item)
	for _, it := range pool {
		bySection[it.Section] = append(bySection[it.Section], it)
	}

	selected := make(map[string]bool)
	shortSlots := 0

	for _, sq := range Quotas(c.table, count) {
		fill := SectionFill{Section: sq.Section, Quota: sq.Quota}
		ranked := c.ranker.Rank(bySection[sq.Section], now)
		for _, sc := range ranked {
			if fill.Filled >= sq.Quota {
				break
			}
			if deadlineExceeded(ctx) {
				plan.Truncated = true
				break
			}
			plan.ItemIDs = append(plan.ItemIDs, sc.Item.ID)
			selected[sc.Item.ID] = true
			fill.Filled++
		}
		if plan.Truncated {
			plan.Fills = append(plan.Fills, fill)
			return
		}
		shortSlots += sq.Quota - fill.Filled
		plan.Fills = append(plan.Fills, fill)
	}

	if shortSlots == 0 {
		return
	}

	// Random fallback: draw the leftover slots from every unselected
	// item, seeded so the plan stays reproducible.
	var rest []scheduler.Item
	for _, it := range pool {
		if !selected[it.ID] {
			rest = append(rest, it)
		}
	}
	rng := rand.New(rand.NewSource(plan.Seed))
	rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })

	fallback := make(map[exam.SectionID]int)
	for _, it := range rest {
		if shortSlots == 0 {
			break
		}
		if deadlineExceeded(ctx) {
			plan.Truncated = true
			break
		}
		plan.ItemIDs = append(plan.ItemIDs, it.ID)
		fallback[it.Section]++
		shortSlots--
	}
	for i := range plan.Fills {
		plan.Fills[i].RandomFill = fallback[plan.Fills[i].Section]
	}
}

func deadlineExceeded(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

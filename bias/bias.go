package bias

import "math/rand"

// bigramKey keys the context-sensitive weight table: the choice made
// immediately before, and the choice itself.
type bigramKey struct {
	prior, item any
}

// table is the core state shared among all forks of one root Bias:
// tuning constants, the item and bigram weight tables, and the random
// source.
type table struct {
	defaultWeight  float64
	rewardDelta    float64
	penaltyDelta   float64
	bigramPriority float64

	weights map[any]float64
	bigrams map[bigramKey]float64

	rnd *rand.Rand // nil means the shared global source
}

func (t *table) random() float64 {
	if t.rnd != nil {
		return t.rnd.Float64()
	}
	return rand.Float64()
}

// weight returns the current effective weight of item in the given
// context, initializing the item's marginal weight on first sight. With a
// recorded bigram (prior, item) the result is the convex combination
// p*bigram + (1-p)*marginal; otherwise the marginal weight alone.
func (t *table) weight(item, prior any) float64 {
	w, ok := t.weights[item]
	if !ok {
		w = t.defaultWeight
		t.weights[item] = w
	}
	if prior == nil {
		return w
	}
	bw, ok := t.bigrams[bigramKey{prior, item}]
	if !ok {
		// Unseen in this context; fall back on the weight accumulated
		// over all contexts.
		return w
	}
	return t.bigramPriority*bw + (1-t.bigramPriority)*w
}

// choose samples one candidate with probability proportional to its
// effective weight: a single uniform draw against the cumulative weight
// sum. Returns nil for an empty candidate list. Rounding error that
// leaves the cumulative sum just short of the draw yields the last
// candidate.
func (t *table) choose(candidates []any, prior any) any {
	if len(candidates) == 0 {
		return nil
	}
	sum := 0.0
	for _, c := range candidates {
		sum += t.weight(c, prior)
	}
	r := t.random()
	bound := 0.0
	for _, c := range candidates {
		bound += t.weight(c, prior) / sum
		if r <= bound {
			return c
		}
	}
	return candidates[len(candidates)-1]
}

// reward moves the item's weight a rewardDelta fraction of the way toward
// 1.0, and does the same for the (prior, item) bigram when a prior is
// given, seeding it at the default weight if unseen.
func (t *table) reward(item, prior any) {
	w := t.weight(item, nil)
	t.weights[item] = w + t.rewardDelta*(1.0-w)
	if prior == nil {
		return
	}
	key := bigramKey{prior, item}
	bw, ok := t.bigrams[key]
	if !ok {
		bw = t.defaultWeight
	}
	t.bigrams[key] = bw + t.rewardDelta*(1.0-bw)
}

// penalize moves the item's weight a penaltyDelta fraction of the way
// toward 0.0, and the bigram's likewise when a prior is given.
func (t *table) penalize(item, prior any) {
	w := t.weight(item, nil)
	t.weights[item] = w - t.penaltyDelta*w
	if prior == nil {
		return
	}
	key := bigramKey{prior, item}
	bw, ok := t.bigrams[key]
	if !ok {
		bw = t.defaultWeight
	}
	t.bigrams[key] = bw - t.penaltyDelta*bw
}

// Bias makes weighted choices among arbitrary comparable values and
// records them as one episode's history. All forks of a root Bias share
// one weight table; each fork keeps its own history.
type Bias struct {
	core    *table
	history []any
}

// New returns a root Bias with a fresh weight table.
func New(opts ...Option) *Bias {
	t := &table{
		defaultWeight:  DefaultWeight,
		rewardDelta:    DefaultRewardDelta,
		penaltyDelta:   DefaultPenaltyDelta,
		bigramPriority: DefaultBigramPriority,
		weights:        make(map[any]float64),
		bigrams:        make(map[bigramKey]float64),
	}
	for _, opt := range opts {
		opt(t)
	}
	return &Bias{core: t}
}

// Fork returns a new Bias sharing this one's weight table, with an
// independent copy of the history accumulated so far. Updates made through
// any fork are visible to all forks.
func (b *Bias) Fork() *Bias {
	history := make([]any, len(b.history))
	copy(history, b.history)
	return &Bias{core: b.core, history: history}
}

// Choose samples one candidate in proportion to its effective weight,
// using the episode's previous choice as bigram context, and appends the
// result to the episode history. An empty candidate list is "no choice":
// the result is nil and the history is not extended.
func (b *Bias) Choose(candidates []any) any {
	choice := b.core.choose(candidates, b.prior())
	if choice == nil {
		return nil
	}
	b.history = append(b.history, choice)
	return choice
}

// Weight reports the current effective weight of item in the given
// context (prior may be nil). Mainly useful for inspection and tests.
func (b *Bias) Weight(item, prior any) float64 {
	return b.core.weight(item, prior)
}

// RewardItem applies a single reward update to item (and to the
// (prior, item) bigram when prior is non-nil) without touching history.
func (b *Bias) RewardItem(item, prior any) {
	b.core.reward(item, prior)
}

// PenalizeItem applies a single penalty update to item (and to the
// (prior, item) bigram when prior is non-nil) without touching history.
func (b *Bias) PenalizeItem(item, prior any) {
	b.core.penalize(item, prior)
}

// Reward replays the episode history in order, rewarding every recorded
// choice with its immediate predecessor as bigram context (the first item
// has no prior). Call it when the episode's output was judged good.
func (b *Bias) Reward() {
	var prior any
	for _, item := range b.history {
		b.core.reward(item, prior)
		prior = item
	}
}

// Penalize replays the episode history in order, penalizing every
// recorded choice with its immediate predecessor as context. Call it when
// the episode's output was judged bad.
func (b *Bias) Penalize() {
	var prior any
	for _, item := range b.history {
		b.core.penalize(item, prior)
		prior = item
	}
}

// History returns a copy of the episode's recorded choices in order.
func (b *Bias) History() []any {
	out := make([]any, len(b.history))
	copy(out, b.history)
	return out
}

// prior returns the episode's most recent choice, or nil at the start.
func (b *Bias) prior() any {
	if len(b.history) == 0 {
		return nil
	}
	return b.history[len(b.history)-1]
}

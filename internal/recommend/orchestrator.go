// Package recommend drives the ranking fallback chain: an ordered list of
// AI provider adapters, then the deterministic baseline unconditionally.
package recommend

import (
	"context"

	"github.com/alexanderramin/driveline/internal/domain"
	"github.com/alexanderramin/driveline/internal/engine"
	"github.com/alexanderramin/driveline/internal/provider"
)

// Strategy selects which part of the provider chain runs.
type Strategy string

const (
	// StrategyDeterministic skips AI entirely.
	StrategyDeterministic Strategy = "deterministic"
	// StrategyPrimaryAI runs the full chain: primary, secondary, baseline.
	StrategyPrimaryAI Strategy = "primary-ai"
	// StrategySecondaryAI skips the primary provider.
	StrategySecondaryAI Strategy = "secondary-ai"
)

var ValidStrategies = map[Strategy]bool{
	StrategyDeterministic: true, StrategyPrimaryAI: true, StrategySecondaryAI: true,
}

const deterministicName = "deterministic"

// Orchestrator holds the provider chain. Stateless between calls apart from
// its read-only configuration, so it is safe for concurrent use.
type Orchestrator struct {
	providers []provider.Ranker
	observer  provider.Observer
}

// New builds an Orchestrator over an ordered provider list. Later providers
// are tried only after earlier ones fail; the deterministic baseline always
// terminates the chain and is not part of the list.
func New(providers []provider.Ranker, observer provider.Observer) *Orchestrator {
	if observer == nil {
		observer = provider.NoopObserver{}
	}
	return &Orchestrator{providers: providers, observer: observer}
}

// Recommend ranks the candidates and tiers the result. It never fails: any
// provider error advances the chain, and the deterministic baseline is pure
// computation. The caller cannot tell from the result which path served it;
// fallback transitions are visible only through the Observer.
func (o *Orchestrator) Recommend(ctx context.Context, vehicles []domain.CandidateVehicle, needs domain.NeedsProfile, strategy Strategy) domain.TieredRecommendations {
	for _, r := range o.chainFor(strategy) {
		scored, err := r.Rank(ctx, vehicles, needs)
		if err == nil {
			return engine.Tier(scored)
		}
		o.observer.OnFallback(r.Name(), o.nextName(r, strategy), err)
	}
	return engine.Tier(o.deterministic(vehicles, needs))
}

// chainFor returns the providers a strategy attempts, in order.
func (o *Orchestrator) chainFor(strategy Strategy) []provider.Ranker {
	switch strategy {
	case StrategyDeterministic:
		return nil
	case StrategySecondaryAI:
		if len(o.providers) > 1 {
			return o.providers[1:]
		}
		return nil
	default:
		return o.providers
	}
}

// nextName names the chain element after r, for fallback events.
func (o *Orchestrator) nextName(r provider.Ranker, strategy Strategy) string {
	chain := o.chainFor(strategy)
	for i, p := range chain {
		if p == r && i+1 < len(chain) {
			return chain[i+1].Name()
		}
	}
	return deterministicName
}

func (o *Orchestrator) deterministic(vehicles []domain.CandidateVehicle, needs domain.NeedsProfile) []domain.ScoredVehicle {
	scored := make([]domain.ScoredVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		scored = append(scored, engine.Score(v, needs))
	}
	return scored
}

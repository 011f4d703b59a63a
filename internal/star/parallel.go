package star

import (
	"context"
	"sync"

	"github.com/san-kum/tovstar/internal/eos"
)

// Ensemble runs several models over the same grid and central condition.
// Each model gets its own goroutine and its own Integrator, so a failure
// in one run cannot touch another's profile.
type Ensemble struct {
	eos eos.EOS
	cfg Config
}

func NewEnsemble(e eos.EOS, cfg Config) *Ensemble {
	return &Ensemble{eos: e, cfg: cfg}
}

// Run returns one profile and one error slot per requested model, index-
// aligned with models.
func (e *Ensemble) Run(ctx context.Context, grid Grid, central eos.CentralCondition, models []Model) ([]*Profile, []error) {
	profiles := make([]*Profile, len(models))
	errs := make([]error, len(models))

	var wg sync.WaitGroup
	for i, m := range models {
		wg.Add(1)
		go func(idx int, model Model) {
			defer wg.Done()
			it := New(e.eos, e.cfg)
			profiles[idx], errs[idx] = it.Run(ctx, grid, central, model)
		}(i, m)
	}
	wg.Wait()

	return profiles, errs
}

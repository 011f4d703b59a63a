package star

import (
	"context"

	"github.com/san-kum/tovstar/internal/eos"
)

// Integrator advances the (mass, pressure) pair outward over a radial grid
// with fixed-step RK4. An Integrator holds no per-run state; runs are
// independent and repeat runs with the same inputs produce identical output.
type Integrator struct {
	grad gradients
	cfg  Config
}

func New(e eos.EOS, cfg Config) *Integrator {
	return &Integrator{grad: gradients{eos: e}, cfg: cfg}
}

// Run integrates one model over the grid from the central condition.
// The returned profile has one entry per grid point; once the pressure
// falls to the surface tolerance the remaining points carry zero pressure
// and the frozen surface mass.
func (it *Integrator) Run(ctx context.Context, grid Grid, central eos.CentralCondition, model Model) (*Profile, error) {
	if err := it.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	n := len(grid)
	prof := &Profile{
		Model:        model,
		Radius:       append([]float64(nil), grid...),
		Mass:         make([]float64, n),
		Pressure:     make([]float64, n),
		SurfaceIndex: -1,
	}

	s := State{Mass: 0, Pressure: central.Pressure}
	prof.Mass[0] = s.Mass
	prof.Pressure[0] = s.Pressure

	h := grid.Step()
	for i := 1; i < n; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		next, err := it.Step(grid[i-1], h, s, model)
		if err != nil {
			return nil, &StepError{Model: model, Index: i, Radius: grid[i], Wrapped: err}
		}
		if !next.IsValid() {
			return nil, &StepError{Model: model, Index: i, Radius: grid[i], Wrapped: ErrNonFinite}
		}

		if next.Pressure <= it.cfg.SurfaceTol {
			prof.SurfaceIndex = i
			for j := i; j < n; j++ {
				prof.Mass[j] = next.Mass
				prof.Pressure[j] = 0
			}
			return prof, nil
		}

		s = next
		prof.Mass[i] = s.Mass
		prof.Pressure[i] = s.Pressure
	}
	return prof, nil
}

// Step advances one radial step from r to r+h with the standard RK4
// weighted average (1,2,2,1)/6, evaluating the equation of state at each
// of the four stages.
func (it *Integrator) Step(r, h float64, s State, model Model) (State, error) {
	k1m, k1p, err := it.grad.eval(r, s, model)
	if err != nil {
		return State{}, err
	}

	mid := State{Mass: s.Mass + 0.5*h*k1m, Pressure: s.Pressure + 0.5*h*k1p}
	k2m, k2p, err := it.grad.eval(r+0.5*h, mid, model)
	if err != nil {
		return State{}, err
	}

	mid = State{Mass: s.Mass + 0.5*h*k2m, Pressure: s.Pressure + 0.5*h*k2p}
	k3m, k3p, err := it.grad.eval(r+0.5*h, mid, model)
	if err != nil {
		return State{}, err
	}

	end := State{Mass: s.Mass + h*k3m, Pressure: s.Pressure + h*k3p}
	k4m, k4p, err := it.grad.eval(r+h, end, model)
	if err != nil {
		return State{}, err
	}

	h6 := h / 6.0
	return State{
		Mass:     s.Mass + h6*(k1m+2*k2m+2*k3m+k4m),
		Pressure: s.Pressure + h6*(k1p+2*k2p+2*k3p+k4p),
	}, nil
}

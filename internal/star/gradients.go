package star

import (
	"github.com/san-kum/tovstar/internal/eos"
)

// gradients evaluates the coupled structure equations
//
//	dm/dr = r^2 * rho(p)                                      (both models)
//	dp/dr = -m * rho(p) / r^2                                 (classical)
//	dp/dr = -(rho(p)+p) * (m + p*r^3) / (r^2 - 2mr)           (tov)
//
// in dimensionless form. At r = 0 both pressure gradients are the 0/0 form
// whose limit is 0, since m ~ r^3 near the center; the evaluation
// special-cases that point instead of dividing.
type gradients struct {
	eos eos.EOS
}

func (g gradients) eval(r float64, s State, model Model) (dm, dp float64, err error) {
	p := s.Pressure
	if p < 0 {
		// RK4 trial states can undershoot the surface; matter outside
		// the star has zero pressure and density.
		p = 0
	}
	rho, err := g.eos.DensityFromPressure(p)
	if err != nil {
		return 0, 0, err
	}

	dm = r * r * rho
	if r == 0 {
		return dm, 0, nil
	}

	switch model {
	case Relativistic:
		den := r*r - 2*s.Mass*r
		if den <= 0 {
			return 0, 0, ErrSingular
		}
		dp = -(rho + p) * (s.Mass + p*r*r*r) / den
	default:
		dp = -s.Mass * rho / (r * r)
	}
	return dm, dp, nil
}

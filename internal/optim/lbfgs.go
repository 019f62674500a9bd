// Package optim builds configuration records for the external optimization
// routines used during model training.
package optim

// LBFGSOptions configures an L-BFGS-B run.
type LBFGSOptions struct {
	IPrint int     // verbosity level passed through to the solver
	MaxLS  int     // line-search steps per iteration
	GTol   float64 // gradient convergence tolerance
	FTol   float64 // objective convergence tolerance
	Eps    float64 // finite-difference gradient step
	MaxFun int     // cap on function evaluations
	MaxCor int     // history size for the Hessian approximation
}

// NewLBFGSOptions builds solver options for a training run. The line-search
// cap and gradient step are fixed; tol sets both convergence tolerances.
func NewLBFGSOptions(iprint, iters int, tol float64, memory int) LBFGSOptions {
	return LBFGSOptions{
		IPrint: iprint,
		MaxLS:  20,
		GTol:   tol,
		FTol:   tol,
		Eps:    1e-8,
		MaxFun: iters,
		MaxCor: memory,
	}
}

// Map renders the options under the key names the solver expects.
func (o LBFGSOptions) Map() map[string]any {
	return map[string]any{
		"iprint": o.IPrint,
		"maxls":  o.MaxLS,
		"gtol":   o.GTol,
		"ftol":   o.FTol,
		"eps":    o.Eps,
		"maxfun": o.MaxFun,
		"maxcor": o.MaxCor,
	}
}

package schedule

// EligibleStep records one step eligible for mode insertion: its index,
// the best replacement mode at that step, and D[k, m*(k)].
type EligibleStep struct {
	Step int
	Mode ModeID
	D    float64
}

// EligibleSet collects the steps whose insertion gradient is sufficiently
// negative to be worth switching, per spec §4.5.3/§9: S = { k : D[k,m*(k)]
// <= -η·|d_min| }. η scales the threshold relative to the most negative
// entry in the whole gradient so the set is non-empty whenever d_min < 0
// and shrinks as the schedule approaches optimality.
func EligibleSet(g InsertionGradient, eta float64) []EligibleStep {
	if g.DMin >= 0 {
		return nil
	}
	threshold := eta * g.DMin // both negative; threshold is the (less negative) cutoff
	out := make([]EligibleStep, 0, len(g.D))
	for k := range g.D {
		d := g.MinAt(k)
		if d <= threshold {
			out = append(out, EligibleStep{Step: k, Mode: g.Best[k], D: d})
		}
	}
	return out
}

// ArmijoResult is the outcome of one call to ArmijoSearch.
type ArmijoResult struct {
	Schedule Schedule
	Accepted bool
	Attempts int
}

// ArmijoOptions parameterises the subset line search (spec §4.5.3, Open
// Question (c)).
type ArmijoOptions struct {
	Eta        float64 // eligibility threshold scale, 0 < eta <= 1
	Alpha      float64 // sufficient-decrease scale, 0 < alpha < 1
	Beta       float64 // measure contraction factor, 0 < beta < 1
	MaxRetries int
}

// applySubset returns a copy of sigma with every step in subset reassigned
// to its recorded best mode.
func applySubset(sigma Schedule, subset []EligibleStep) Schedule {
	out := make(Schedule, len(sigma))
	copy(out, sigma)
	for _, e := range subset {
		out[e.Step] = e.Mode
	}
	return out
}

// selectByMeasure walks the eligible set in time order, accumulating steps
// until the measure h*|selected| reaches lambda, per spec §9 (resolved: on
// an Armijo rejection the original eligible set S is reused and only the
// measure budget lambda is contracted, rather than recomputing a new
// eligibility threshold).
func selectByMeasure(eligible []EligibleStep, h, lambda float64) []EligibleStep {
	budget := int(lambda / h)
	if budget < 0 {
		budget = 0
	}
	if budget > len(eligible) {
		budget = len(eligible)
	}
	return eligible[:budget]
}

// ArmijoSearch performs the subset line search described in spec §4.5.3:
// starting from the full eligible set, it contracts the measure budget
// lambda by beta on every rejection and retries the sufficient-decrease
// test J(sigma') - J(sigma) <= alpha*lambda*dMin, reusing the same
// eligible set S throughout (Open Question (c)). It gives up after
// MaxRetries and returns the unchanged schedule (spec §7).
func ArmijoSearch(cat ModeCatalogue, sigma Schedule, x0 []float64, h float64, g InsertionGradient, baseCost float64, opt ArmijoOptions) ArmijoResult {
	eligible := EligibleSet(g, opt.Eta)
	if len(eligible) == 0 {
		return ArmijoResult{Schedule: sigma, Accepted: false, Attempts: 0}
	}

	lambda := h * float64(len(eligible))
	maxRetries := opt.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 20
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		subset := selectByMeasure(eligible, h, lambda)
		if len(subset) == 0 {
			return ArmijoResult{Schedule: sigma, Accepted: false, Attempts: attempt + 1}
		}
		candidate := applySubset(sigma, subset)
		xCandidate := ForwardSweep(cat, candidate, x0, h)
		candidateCost := TotalCost(cat, candidate, xCandidate)

		if candidateCost-baseCost <= opt.Alpha*lambda*g.DMin {
			return ArmijoResult{Schedule: candidate, Accepted: true, Attempts: attempt + 1}
		}
		lambda *= opt.Beta
	}
	return ArmijoResult{Schedule: sigma, Accepted: false, Attempts: maxRetries}
}

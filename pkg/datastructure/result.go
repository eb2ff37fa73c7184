package datastructure

// MethodResult is one estimator's output inside a comparison run.
type MethodResult struct {
	method      string
	displayName string
	sensitivity *Matrix
	elapsedMs   float64
}

func NewMethodResult(method, displayName string, sensitivity *Matrix, elapsedMs float64) MethodResult {
	return MethodResult{
		method:      method,
		displayName: displayName,
		sensitivity: sensitivity,
		elapsedMs:   elapsedMs,
	}
}

func (r MethodResult) GetMethod() string {
	return r.method
}

func (r MethodResult) GetDisplayName() string {
	return r.displayName
}

func (r MethodResult) GetSensitivity() *Matrix {
	return r.sensitivity
}

func (r MethodResult) GetElapsedMs() float64 {
	return r.elapsedMs
}

// MethodResults keeps comparison outputs in a fixed presentation order
// (Basic, Dual-based, Auction, Geometric, Reduced Cost, Perturbation),
// independent of which estimator finished first.
type MethodResults []MethodResult

func (rs MethodResults) Get(displayName string) (MethodResult, bool) {
	for _, r := range rs {
		if r.displayName == displayName {
			return r, true
		}
	}
	return MethodResult{}, false
}

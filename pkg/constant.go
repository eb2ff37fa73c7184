package pkg

// enum of sensitivity estimation method
type SensitivityMethod uint8

const (
	BASIC SensitivityMethod = iota
	DUAL_BASED
	AUCTION_BASED
	GEOMETRIC_BOUNDS
	REDUCED_COST
	PERTURBATION_THEORY
	ALL_METHODS
	UNKNOWN_METHOD
)

const (
	DEFAULT_AUCTION_EPSILON    = 1.0
	DEFAULT_PERTURBATION_DELTA = 0.01
	GEOMETRIC_FALLBACK_GAP     = 10.0
	CYCLE_FALLBACK_COST        = 5.0

	RANDOM_COST_MIN = 1
	RANDOM_COST_MAX = 20

	MAX_MATRIX_DIM = 32
)

const (
	DEBUG = false
)

func ParseSensitivityMethod(method string) SensitivityMethod {
	switch method {
	case "basic":
		return BASIC
	case "dual_based":
		return DUAL_BASED
	case "auction_based":
		return AUCTION_BASED
	case "geometric_bounds":
		return GEOMETRIC_BOUNDS
	case "reduced_cost":
		return REDUCED_COST
	case "perturbation_theory":
		return PERTURBATION_THEORY
	case "all_methods":
		return ALL_METHODS
	default:
		return UNKNOWN_METHOD
	}
}

func (m SensitivityMethod) String() string {
	switch m {
	case BASIC:
		return "basic"
	case DUAL_BASED:
		return "dual_based"
	case AUCTION_BASED:
		return "auction_based"
	case GEOMETRIC_BOUNDS:
		return "geometric_bounds"
	case REDUCED_COST:
		return "reduced_cost"
	case PERTURBATION_THEORY:
		return "perturbation_theory"
	case ALL_METHODS:
		return "all_methods"
	default:
		return "unknown"
	}
}

// label used in comparison views and the cli output
func (m SensitivityMethod) DisplayName() string {
	switch m {
	case BASIC:
		return "Basic"
	case DUAL_BASED:
		return "Dual-based"
	case AUCTION_BASED:
		return "Auction"
	case GEOMETRIC_BOUNDS:
		return "Geometric"
	case REDUCED_COST:
		return "Reduced Cost"
	case PERTURBATION_THEORY:
		return "Perturbation"
	default:
		return "Unknown"
	}
}

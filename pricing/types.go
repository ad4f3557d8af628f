package pricing

// Money represents a delivery price in whole currency units.
type Money = int64

const (
	// MinDeliveryCost is the lowest price ever quoted for a delivery.
	MinDeliveryCost Money = 400
	// MaxFragileDistanceKm is the farthest distance fragile cargo may travel.
	MaxFragileDistanceKm = 30.0
)

// Size describes the cargo dimensions class.
type Size string

const (
	SizeSmall Size = "small"
	SizeBig   Size = "big"
)

// Valid reports whether s is one of the recognised sizes.
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeBig:
		return true
	default:
		return false
	}
}

// Workload is the courier service load coefficient applied after all surcharges.
type Workload float64

const (
	WorkloadNormal    Workload = 1.0
	WorkloadIncreased Workload = 1.2
	WorkloadHigh      Workload = 1.4
	WorkloadVeryHigh  Workload = 1.6
)

// Workloads returns the recognised coefficients in ascending order.
func Workloads() []Workload {
	return []Workload{WorkloadNormal, WorkloadIncreased, WorkloadHigh, WorkloadVeryHigh}
}

// Valid reports whether w exactly matches a recognised coefficient.
func (w Workload) Valid() bool {
	switch w {
	case WorkloadNormal, WorkloadIncreased, WorkloadHigh, WorkloadVeryHigh:
		return true
	default:
		return false
	}
}

func (w Workload) String() string {
	switch w {
	case WorkloadNormal:
		return "normal"
	case WorkloadIncreased:
		return "increased"
	case WorkloadHigh:
		return "high"
	case WorkloadVeryHigh:
		return "very_high"
	default:
		return "unknown"
	}
}

// Input carries the arguments of a single quote. Nil fields are treated as absent.
type Input struct {
	Distance *float64  `json:"distance" validate:"required,finite,gte=0"`
	Size     *Size     `json:"size" validate:"required,size"`
	Fragile  *bool     `json:"is_fragile" validate:"required"`
	Workload *Workload `json:"k_workload" validate:"required,workload"`
}

// NewInput builds an Input with every field present.
func NewInput(distance float64, size Size, fragile bool, workload Workload) Input {
	return Input{
		Distance: &distance,
		Size:     &size,
		Fragile:  &fragile,
		Workload: &workload,
	}
}

// Breakdown aggregates the components of a computed delivery price.
type Breakdown struct {
	DistanceSurcharge Money
	SizeSurcharge     Money
	FragileSurcharge  Money
	Subtotal          Money
	Workload          Workload
	Total             Money
	MinimumApplied    bool
}

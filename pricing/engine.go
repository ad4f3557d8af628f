package pricing

import "github.com/shopspring/decimal"

var minDeliveryCost = decimal.NewFromInt(MinDeliveryCost)

// Compute returns the delivery price for fully specified arguments.
func Compute(distance float64, size Size, fragile bool, workload Workload) (Money, error) {
	return Calculate(NewInput(distance, size, fragile, workload))
}

// Calculate validates in and returns the delivery price.
func Calculate(in Input) (Money, error) {
	b, err := Explain(in)
	if err != nil {
		return 0, err
	}
	return b.Total, nil
}

// Explain validates in and returns the full price breakdown.
func Explain(in Input) (Breakdown, error) {
	if err := Validate(in); err != nil {
		return Breakdown{}, err
	}
	return breakdown(*in.Distance, *in.Size, *in.Fragile, *in.Workload), nil
}

// breakdown assumes validated arguments.
func breakdown(distance float64, size Size, fragile bool, workload Workload) Breakdown {
	b := Breakdown{
		DistanceSurcharge: distanceSurcharge(distance),
		SizeSurcharge:     100,
		Workload:          workload,
	}
	if size == SizeBig {
		b.SizeSurcharge = 200
	}
	if fragile {
		b.FragileSurcharge = 300
	}
	b.Subtotal = b.DistanceSurcharge + b.SizeSurcharge + b.FragileSurcharge

	total := decimal.NewFromInt(b.Subtotal).Mul(decimal.NewFromFloat(float64(workload)))
	if total.LessThan(minDeliveryCost) {
		b.Total = MinDeliveryCost
		b.MinimumApplied = true
		return b
	}
	b.Total = total.Round(0).IntPart()
	return b
}

func distanceSurcharge(distance float64) Money {
	switch {
	case distance > 30:
		return 300
	case distance > 10:
		return 200
	case distance > 2:
		return 100
	default:
		return 50
	}
}

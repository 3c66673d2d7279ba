package polyfit

// DefaultTargetCorrelation is the squared correlation a fitted degree must
// strictly exceed for BestFit to accept it.
const DefaultTargetCorrelation = 0.9

type Options struct {
	TargetCorrelation float64 `json:"target_correlation"`
}

func NewDefaultOptions() *Options {
	return &Options{
		TargetCorrelation: DefaultTargetCorrelation,
	}
}

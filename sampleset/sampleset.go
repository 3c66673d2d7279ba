// Package sampleset holds the sample pairs a fit session trains on. A
// dataset pairs two sequences by index and pins them to one floating point
// representation; every downstream computation runs in that
// representation.
package sampleset

import (
	"errors"
	"fmt"
)

var (
	ErrNoSampleData   = errors.New("no sample data")
	ErrLenMismatch    = errors.New("x sequence has a different length than y")
	ErrKindMismatch   = errors.New("x and y sequences have different representations")
	ErrNilSequence    = errors.New("uninitialized sequence")
	ErrUnknownKind    = errors.New("unknown sequence representation")
)

// Kind identifies the floating point representation of a sequence.
type Kind int

const (
	Float64Kind Kind = iota
	Float32Kind
)

func (k Kind) String() string {
	switch k {
	case Float64Kind:
		return "float64"
	case Float32Kind:
		return "float32"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// BitSize returns the strconv bit size for the representation.
func (k Kind) BitSize() int {
	if k == Float32Kind {
		return 32
	}
	return 64
}

// ParseKind maps a representation name to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "float64", "":
		return Float64Kind, nil
	case "float32":
		return Float32Kind, nil
	}
	return 0, fmt.Errorf("%q, %w", s, ErrUnknownKind)
}

// Sequence is an ordered sequence of numeric values in a single
// representation.
type Sequence interface {
	Len() int
	Kind() Kind
	// Float64 returns a widened copy of the sequence.
	Float64() []float64
}

// Float64Seq is a double precision sequence.
type Float64Seq []float64

func (s Float64Seq) Len() int   { return len(s) }
func (s Float64Seq) Kind() Kind { return Float64Kind }

func (s Float64Seq) Float64() []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}

// Float32Seq is a single precision sequence.
type Float32Seq []float32

func (s Float32Seq) Len() int   { return len(s) }
func (s Float32Seq) Kind() Kind { return Float32Kind }

func (s Float32Seq) Float64() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}

// Dataset pairs two sequences of equal length and representation. It is
// immutable after construction; the fit session owns it exclusively.
type Dataset struct {
	X Sequence
	Y Sequence
}

// New validates and returns a dataset from the given sequences.
func New(x, y Sequence) (*Dataset, error) {
	if x == nil || y == nil {
		return nil, ErrNilSequence
	}
	if x.Kind() != y.Kind() {
		return nil, fmt.Errorf("x is %s but y is %s, %w", x.Kind(), y.Kind(), ErrKindMismatch)
	}
	if x.Len() != y.Len() {
		return nil, fmt.Errorf(
			"x has a length of %d, but y has a length of %d, %w",
			x.Len(), y.Len(), ErrLenMismatch,
		)
	}
	if x.Len() == 0 {
		return nil, ErrNoSampleData
	}
	return &Dataset{X: clone(x), Y: clone(y)}, nil
}

func clone(s Sequence) Sequence {
	switch seq := s.(type) {
	case Float64Seq:
		out := make(Float64Seq, len(seq))
		copy(out, seq)
		return out
	case Float32Seq:
		out := make(Float32Seq, len(seq))
		copy(out, seq)
		return out
	}
	return s
}

func (d *Dataset) Len() int {
	return d.X.Len()
}

func (d *Dataset) Kind() Kind {
	return d.X.Kind()
}

func (d *Dataset) Copy() *Dataset {
	return &Dataset{X: clone(d.X), Y: clone(d.Y)}
}

package polyfit

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/aouyang1/go-polyfit/sampleset"
	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
)

// Model is the serializable state of a fitted polynomial. DataChecksum
// fingerprints the sample data the model was fitted on so a loaded model
// can be checked against a dataset before reuse.
type Model struct {
	Options       *Options  `json:"options"`
	Kind          string    `json:"kind"`
	Degree        int       `json:"degree"`
	Coefficients  []float64 `json:"coefficients"`
	Correlation   float64   `json:"correlation_coefficient"`
	StandardError float64   `json:"standard_error"`
	DataChecksum  uint64    `json:"data_checksum"`
}

// Model fits the given degree and captures the result along with its fit
// statistics in a serializable form.
func (f *Fit) Model(degree int) (Model, error) {
	if f.eng == nil {
		return Model{}, ErrNoSamples
	}

	terms, err := f.ComputeCoefficients(degree)
	if err != nil {
		return Model{}, err
	}
	r2, err := f.CorrelationCoefficient(terms)
	if err != nil {
		return Model{}, err
	}
	se, err := f.StandardError(terms)
	if err != nil {
		return Model{}, err
	}

	return Model{
		Options:       f.opt,
		Kind:          f.kind.String(),
		Degree:        degree,
		Coefficients:  terms,
		Correlation:   r2,
		StandardError: se,
		DataChecksum:  f.checksum(),
	}, nil
}

// NewFromModel restores an evaluator-capable session from a previously
// serialized model. The restored session carries no sample data, so calls
// needing samples return ErrNoSamples and coefficient lookups only accept
// the model's degree.
func NewFromModel(m Model) (*Fit, error) {
	if m.Options == nil {
		return nil, ErrNoOptionsInModel
	}
	if len(m.Coefficients) != m.Degree+1 {
		return nil, fmt.Errorf(
			"model of degree %d has %d coefficients, %w",
			m.Degree, len(m.Coefficients), ErrModelDegree,
		)
	}
	kind, err := sampleset.ParseKind(m.Kind)
	if err != nil {
		return nil, fmt.Errorf("unable to restore model, %w, %w", err, ErrConfiguration)
	}

	return &Fit{
		opt:   m.Options,
		kind:  kind,
		model: &m,
	}, nil
}

// CheckModel reports whether the model was fitted on this session's sample
// data by comparing checksums.
func (f *Fit) CheckModel(m Model) error {
	if f.eng == nil {
		return ErrNoSamples
	}
	if m.DataChecksum != f.checksum() {
		return ErrModelChecksum
	}
	return nil
}

func (f *Fit) checksum() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, seq := range []sampleset.Sequence{f.data.X, f.data.Y} {
		for _, v := range seq.Float64() {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			d.Write(buf[:])
		}
	}
	return d.Sum64()
}

// WriteJSON writes the model as indented JSON.
func (m Model) WriteJSON(w io.Writer) error {
	bytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(bytes)
	return err
}

// LoadModel reads a model previously written with WriteJSON.
func LoadModel(r io.Reader) (Model, error) {
	var m Model
	bytes, err := io.ReadAll(r)
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(bytes, &m); err != nil {
		return m, err
	}
	return m, nil
}

package mlmodel

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrColumnCount     = errors.New("row column count does not match model features")
	ErrColumnMismatch  = errors.New("row column does not match model feature")
	ErrUnknownCategory = errors.New("unknown category")
	ErrValueType       = errors.New("unsupported column value type")
	ErrNonFinite       = errors.New("numeric value is not finite")
)

// Column is one named cell of a tabular row.
type Column struct {
	Name  string
	Value any
}

// Row is a single ordered record. Names and order must match the features the
// artifact was trained on.
type Row []Column

// Names returns the column names in row order.
func (r Row) Names() []string {
	names := make([]string, len(r))
	for i, col := range r {
		names[i] = col.Name
	}
	return names
}

// RowError reports why a row could not be encoded into the model's input vector.
type RowError struct {
	Column string
	Err    error
	Detail string
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row: %v (%s)", e.Err, e.Detail)
	}
	return fmt.Sprintf("row column %q: %v (%s)", e.Column, e.Err, e.Detail)
}

func (e *RowError) Unwrap() error { return e.Err }

// encoder maps a Row to the dense vector the trees were fitted on: numeric
// columns pass through, categorical columns expand to one-hot blocks.
type encoder struct {
	features []Feature
	offsets  []int
	index    []map[string]int
	width    int
}

func newEncoder(features []Feature) *encoder {
	enc := &encoder{
		features: features,
		offsets:  make([]int, len(features)),
		index:    make([]map[string]int, len(features)),
	}
	for i, f := range features {
		enc.offsets[i] = enc.width
		if f.Kind == FeatureCategorical {
			lookup := make(map[string]int, len(f.Categories))
			for j, category := range f.Categories {
				lookup[category] = j
			}
			enc.index[i] = lookup
			enc.width += len(f.Categories)
			continue
		}
		enc.width++
	}
	return enc
}

func (e *encoder) encode(row Row) ([]float64, error) {
	if len(row) != len(e.features) {
		return nil, &RowError{Err: ErrColumnCount, Detail: fmt.Sprintf("got %d, want %d", len(row), len(e.features))}
	}

	x := make([]float64, e.width)
	for i, f := range e.features {
		col := row[i]
		if col.Name != f.Name {
			return nil, &RowError{Column: col.Name, Err: ErrColumnMismatch, Detail: fmt.Sprintf("position %d expects %q", i, f.Name)}
		}

		if f.Kind == FeatureCategorical {
			s, ok := col.Value.(string)
			if !ok {
				return nil, &RowError{Column: f.Name, Err: ErrValueType, Detail: fmt.Sprintf("categorical column holds %T", col.Value)}
			}
			pos, known := e.index[i][s]
			if !known {
				return nil, &RowError{Column: f.Name, Err: ErrUnknownCategory, Detail: fmt.Sprintf("%q", s)}
			}
			x[e.offsets[i]+pos] = 1
			continue
		}

		v, err := toFloat(col.Value)
		if err != nil {
			return nil, &RowError{Column: f.Name, Err: err, Detail: fmt.Sprintf("numeric column holds %T", col.Value)}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &RowError{Column: f.Name, Err: ErrNonFinite, Detail: fmt.Sprintf("%v", v)}
		}
		x[e.offsets[i]] = v
	}
	return x, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, ErrValueType
	}
}

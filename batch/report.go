package batch

import (
	"strconv"

	"github.com/hupe1980/numlit"
)

// Report is the serializable summary of a batch.
//
// Integers are rendered as decimal strings so that 64-bit values survive
// JSON decoders that use float64 numbers.
type Report struct {
	Source   string         `json:"source,omitempty"`
	Total    int            `json:"total"`
	Failed   int            `json:"failed"`
	ByKind   map[string]int `json:"by_kind,omitempty"`
	Values   []string       `json:"values"`
	Failures []Failure      `json:"failures,omitempty"`
}

// Failure describes one literal that did not convert.
type Failure struct {
	Index     int    `json:"index"`
	Func      string `json:"func"`
	Num       string `json:"num"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	BoundHint string `json:"bound_hint,omitempty"`
}

// NewReport summarizes r. source names where the literals came from and
// may be empty. Values of failed indices are empty strings.
func NewReport[T Integer](source string, r *Result[T]) *Report {
	rep := &Report{
		Source: source,
		Total:  r.Len(),
		Failed: r.FailedCount(),
		Values: make([]string, r.Len()),
	}

	for i, v := range r.Values {
		if r.Errors[i] == nil {
			rep.Values[i] = format(v)
		}
	}

	if rep.Failed == 0 {
		return rep
	}

	rep.ByKind = make(map[string]int)
	rep.Failures = make([]Failure, 0, rep.Failed)
	for i, nerr := range r.Failures() {
		kind := nerr.Kind().String()
		rep.ByKind[kind]++
		rep.Failures = append(rep.Failures, Failure{
			Index:     i,
			Func:      nerr.Func,
			Num:       nerr.Num,
			Kind:      kind,
			Message:   nerr.Error(),
			BoundHint: boundHint(nerr.Cause),
		})
	}
	return rep
}

// Merge folds other into r. Failure indices of other are shifted past the
// values already in r, so merging the reports of consecutive chunks gives
// the report of the whole input.
func (r *Report) Merge(other *Report) {
	offset := len(r.Values)

	r.Total += other.Total
	r.Failed += other.Failed
	r.Values = append(r.Values, other.Values...)

	for k, n := range other.ByKind {
		if r.ByKind == nil {
			r.ByKind = make(map[string]int)
		}
		r.ByKind[k] += n
	}
	for _, f := range other.Failures {
		f.Index += offset
		r.Failures = append(r.Failures, f)
	}
}

func format[T Integer](v T) string {
	switch x := any(v).(type) {
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	}
	// Named types fall back to their underlying sign.
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

func boundHint(c numlit.Cause) string {
	switch c := c.(type) {
	case numlit.RangeSignedError:
		return strconv.FormatInt(c.BoundHint, 10)
	case numlit.RangeUnsignedError:
		return strconv.FormatUint(c.BoundHint, 10)
	}
	return ""
}

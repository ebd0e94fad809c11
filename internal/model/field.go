package model

// Float returns a pointer to v. Records use *float64 so that an absent
// value can be told apart from zero.
func Float(v float64) *float64 { return &v }

// Field pairs a required value with its wire name for error reporting.
type Field struct {
	Name  string
	Value *float64
}

// Require returns a *ValidationError naming every nil field of record,
// or nil when all are present.
func Require(record string, fields ...Field) error {
	var missing []string
	for _, f := range fields {
		if f.Value == nil {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Record: record, Fields: missing}
}

// Positive returns a *DivisionError when v is not strictly positive.
func Positive(quantity string, v float64) error {
	if v > 0 {
		return nil
	}
	return &DivisionError{Quantity: quantity, Value: v}
}

func clone(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return Float(*p)
}

// Value returns *p, or 0 when p is nil. Only for reporting; computations
// must Require their inputs first.
func Value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

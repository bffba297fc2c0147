// Package components defines the data model of the pet growth engine:
// pets, wine tastings, growth mappings, evolution stages and the transient
// values computed from them.
package components

// Ptr returns a pointer to v. Used for optional mapping and requirement fields.
func Ptr[T any](v T) *T {
	return &v
}

// IntOr returns *p, or def when p is nil. A present zero is returned as zero.
func IntOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// FloatOr returns *p, or def when p is nil.
func FloatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

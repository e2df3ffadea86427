package utils

// Patch copies *src into *dst when src is set. Update DTOs use pointer
// fields so an absent JSON key leaves the stored value untouched.
func Patch[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// PatchPtr is Patch for optional destination fields.
func PatchPtr[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

// Deref returns *p, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

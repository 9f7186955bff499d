package facets

import xsdgenerrors "github.com/jacoelho/xsdgen/errors"

// LengthBounds resolves the effective [min, max] character count.
//
// A lone minLength above defaultMax raises the maximum to it, and a lone
// maxLength below defaultMin lowers the minimum, so the result is never empty.
func LengthBounds(s Set, defaultMin, defaultMax int) (int, int, error) {
	if err := s.Validate(); err != nil {
		return 0, 0, err
	}
	switch {
	case s.Length != nil:
		return *s.Length, *s.Length, nil
	case s.MinLength != nil && s.MaxLength != nil:
		if *s.MinLength > *s.MaxLength {
			return 0, 0, xsdgenerrors.Newf(xsdgenerrors.ErrFacetConflict, "minLength",
				"minLength (%d) must be <= maxLength (%d)", *s.MinLength, *s.MaxLength)
		}
		return *s.MinLength, *s.MaxLength, nil
	case s.MinLength != nil:
		return *s.MinLength, max(defaultMax, *s.MinLength), nil
	case s.MaxLength != nil:
		return min(defaultMin, *s.MaxLength), *s.MaxLength, nil
	default:
		return defaultMin, defaultMax, nil
	}
}

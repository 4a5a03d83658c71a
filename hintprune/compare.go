package hintprune

import "github.com/appleboy/psautohint/hinteval"

// CompareValues reports whether val1 should be preferred over val2:
// priority (Spc > 0) wins outright; among equal priority tiers the
// larger weight wins, but a priority value only beats a larger
// non-priority one by at least factor, and vice versa. ghostShift
// optionally discounts whichever side is a ghost hint before
// comparing, so a pick between a real and ghost pair isn't swayed by
// raw weight alone. Grounded on auto.c's CompareValues.
func CompareValues(val1, val2 *hinteval.Value, factor, ghostShift int) bool {
	v1, v2 := int64(val1.Val), int64(val2.Val)
	mx := v1
	if v2 > mx {
		mx = v2
	}
	const limit = int64(1) << 40 // generous int64 headroom standing in for FIXED_MAX/2
	for mx != 0 && mx < limit {
		mx *= 2
		v1 *= 2
		v2 *= 2
	}
	if ghostShift > 0 && val1.Ghost != val2.Ghost {
		if val1.Ghost {
			v1 >>= ghostShift
		}
		if val2.Ghost {
			v2 >>= ghostShift
		}
	}
	spc1, spc2 := val1.Spc > 0, val2.Spc > 0
	if spc1 == spc2 {
		return v1 > v2
	}
	if spc1 {
		return v1*int64(factor) > v2
	}
	return v1 > v2*int64(factor)
}

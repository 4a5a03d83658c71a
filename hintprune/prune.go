package hintprune

import "github.com/appleboy/psautohint/fixed"

// Factors used by the Prune* family and CompareValues. Grounded on
// merge.c's PRNFCTR/MUCHFCTR/VERYMUCHFCTR and ac.h's SFACTOR.
const (
	PruneFactor     = 3
	MuchFactor      = 50
	VeryMuchFactor  = 100
	SpcFactor       = 20
	pruneDist       = 10 // PRNDIST = PSDist(10), below
	fix16Shift      = 4  // Fix16 = FixOne << 4
)

// PruneDist is the outline-position slack PruneV/PruneH allow when
// deciding whether one stem's span nearly contains another's.
var PruneDist = fixed.FromInt(pruneDist)

// Fix16 gates PruneHVals's blue-zone exception: a small enough value
// is pruned regardless of zone membership. Grounded on merge.c's Fix16.
var Fix16 = fixed.One << fix16Shift

// PruneLt reports whether val is less than v by more than PruneFactor,
// using int64 arithmetic to sidestep the source's FIXED_MAX overflow
// dance. Grounded on merge.c's PruneLt.
func PruneLt(val, v fixed.Int) bool {
	return int64(val)*PruneFactor < int64(v)*10
}

// PruneLe reports whether v is within PruneFactor of val or smaller.
// Grounded on merge.c's PruneLe.
func PruneLe(val, v fixed.Int) bool {
	return int64(v) <= int64(val)*PruneFactor
}

// PruneGt reports whether v exceeds val by more than PruneFactor.
// Grounded on merge.c's PruneGt.
func PruneGt(val, v fixed.Int) bool {
	return int64(v) > int64(val)*PruneFactor
}

// PruneMuchGt reports whether v exceeds val by more than MuchFactor.
// Grounded on merge.c's PruneMuchGt.
func PruneMuchGt(val, v fixed.Int) bool {
	return int64(v) > int64(val)*MuchFactor
}

// PruneVeryMuchGt reports whether v exceeds val by more than
// VeryMuchFactor. Grounded on merge.c's PruneVeryMuchGt.
func PruneVeryMuchGt(val, v fixed.Int) bool {
	return int64(v) > int64(val)*VeryMuchFactor
}

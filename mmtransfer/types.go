// Package mmtransfer carries a fully hinted master's hint topology over
// to the other masters of a multiple-master font: the same element and
// the same kind of point on it (start, end, average, curve bounding box
// or flattened inflection), re-evaluated against each master's own
// coordinates. Grounded on charpath.c's GetPointType/InsertHint and
// check.c's GetInflectionPoint.
package mmtransfer

import "github.com/appleboy/psautohint/fixed"

// EndpointKind names how a hint's coordinate on one side of a pair was
// derived from its bounding path element, mirroring charpath.c's
// STARTPT/ENDPT/AVERAGE/CURVEBBOX/FLATTEN/GHOST point types.
type EndpointKind int

const (
	Start EndpointKind = iota
	End
	Avg
	CurveBBoxKind
	Flatten
	Ghost
)

// Reference records, for one side of one HintPoint, enough of the
// source master's path to re-evaluate the same point type against a
// different master: which element it came from, what kind of point on
// that element it was, and the source master's own values at that
// element and at that hint (needed only as a fallback when neither
// CurveBBoxKind nor Flatten resolve cleanly on the other master; see
// relativePosition). ElementIndex is glyphpath.None for a Ghost side,
// which carries no element at all.
type Reference struct {
	ElementIndex       int
	Kind               EndpointKind
	SourceStart, SourceEnd fixed.Int
	SourceValue        fixed.Int
}

// HintReference is one transferable hint: a character code ('b', 'y',
// 'v' or 'm', matching hintsubst.HintPoint.Code) plus a Reference for
// each side of the pair. Grounded on charpath.c's PHintElt, whose
// pathix1/pathix2 and leftorbot/rightortop play the same two-sided
// role.
type HintReference struct {
	Code   byte
	Side1  Reference
	Side2  Reference
}

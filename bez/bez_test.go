package bez

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
)

func TestParseSquare(t *testing.T) {
	p, err := Parse(`0 0 mt 0 100 dt 100 100 dt 100 0 dt cp`)
	require.NoError(t, err)
	require.Equal(t, 5, p.Len())

	e0 := p.At(p.Start())
	assert.Equal(t, glyphpath.Move, e0.Kind)
	assert.Equal(t, fixed.FromInt(0), e0.X)
	assert.Equal(t, fixed.FromInt(0), e0.Y)

	last := p.At(p.End())
	assert.Equal(t, glyphpath.Close, last.Kind)
}

func TestParseRelativeOperators(t *testing.T) {
	// rmt to (10,10), hdt by +5 (x only), vdt by +5 (y only), rdt by (-5,-5).
	p, err := Parse(`10 10 rmt 5 hdt 5 vdt -5 -5 rdt`)
	require.NoError(t, err)

	mt := p.At(p.Start())
	assert.Equal(t, fixed.FromInt(10), mt.X)
	assert.Equal(t, fixed.FromInt(10), mt.Y)

	i := p.Next(p.Start())
	h := p.At(i)
	assert.Equal(t, fixed.FromInt(15), h.X)
	assert.Equal(t, fixed.FromInt(10), h.Y)

	i = p.Next(i)
	v := p.At(i)
	assert.Equal(t, fixed.FromInt(15), v.X)
	assert.Equal(t, fixed.FromInt(15), v.Y)

	i = p.Next(i)
	r := p.At(i)
	assert.Equal(t, fixed.FromInt(10), r.X)
	assert.Equal(t, fixed.FromInt(10), r.Y)
}

func TestParseCurveVariants(t *testing.T) {
	// rct: three relative deltas starting from (0,0).
	p, err := Parse(`0 0 mt 10 0 10 10 0 10 rct`)
	require.NoError(t, err)
	c := p.At(p.Next(p.Start()))
	require.Equal(t, glyphpath.Curve, c.Kind)
	assert.Equal(t, fixed.FromInt(10), c.X1)
	assert.Equal(t, fixed.FromInt(0), c.Y1)
	assert.Equal(t, fixed.FromInt(20), c.X2)
	assert.Equal(t, fixed.FromInt(10), c.Y2)
	assert.Equal(t, fixed.FromInt(20), c.X3)
	assert.Equal(t, fixed.FromInt(20), c.Y3)
}

func TestParseHintReplacementOperandsAreNoOps(t *testing.T) {
	p, err := Parse(`0 0 mt 1 2 rb 10 10 dt`)
	require.NoError(t, err)
	require.Equal(t, 2, p.Len())
	assert.Equal(t, glyphpath.Line, p.At(p.End()).Kind)
}

func TestParseUnknownOperatorFails(t *testing.T) {
	_, err := Parse(`0 0 bogus`)
	require.Error(t, err)
}

func TestParseStackUnderflowFails(t *testing.T) {
	_, err := Parse(`0 mt`)
	require.Error(t, err)
}

func TestEmitPathRoundTrips(t *testing.T) {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	p.AppendLine(fixed.FromInt(0), fixed.FromInt(100))
	p.AppendCurve(
		fixed.FromInt(10), fixed.FromInt(110),
		fixed.FromInt(90), fixed.FromInt(110),
		fixed.FromInt(100), fixed.FromInt(100),
	)
	p.AppendClose()

	text := EmitPath(p)
	reparsed, err := Parse(text)
	require.NoError(t, err)
	require.Equal(t, p.Len(), reparsed.Len())

	for i := 0; i < p.Len(); i++ {
		want := p.At(i)
		got := reparsed.At(i)
		assert.Equal(t, want.Kind, got.Kind)
		assert.Equal(t, want.X, got.X)
		assert.Equal(t, want.Y, got.Y)
	}
}

func TestEmitPathEmptyPath(t *testing.T) {
	assert.Equal(t, "", EmitPath(glyphpath.New()))
}

func TestNumFormatsIntegersWithoutDecimals(t *testing.T) {
	assert.Equal(t, "10", num(fixed.FromInt(10)))
	assert.Equal(t, "10.50", num(fixed.FromInt(10)+fixed.One/2))
}

package psautohint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appleboy/psautohint/fixed"
	"github.com/appleboy/psautohint/glyphpath"
	"github.com/appleboy/psautohint/hintsubst"
	"github.com/appleboy/psautohint/mmtransfer"
)

func buildSquare() *glyphpath.Path {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	p.AppendLine(fixed.FromInt(0), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(100), fixed.FromInt(100))
	p.AppendLine(fixed.FromInt(100), fixed.FromInt(0))
	p.AppendClose()
	return p
}

// buildTwoStems is a wide glyph with two well-separated vertical stems
// (0-50 and 500-550), exercised by the overlap and band tests.
func buildTwoStems() *glyphpath.Path {
	p := glyphpath.New()
	p.AppendMove(fixed.FromInt(0), fixed.FromInt(0))
	p.AppendLine(fixed.FromInt(0), fixed.FromInt(200))
	p.AppendLine(fixed.FromInt(50), fixed.FromInt(200))
	p.AppendLine(fixed.FromInt(50), fixed.FromInt(0))
	p.AppendClose()
	p.AppendMove(fixed.FromInt(500), fixed.FromInt(0))
	p.AppendLine(fixed.FromInt(500), fixed.FromInt(200))
	p.AppendLine(fixed.FromInt(550), fixed.FromInt(200))
	p.AppendLine(fixed.FromInt(550), fixed.FromInt(0))
	p.AppendClose()
	return p
}

func sampleFontInfo() *FontInfo {
	return &FontInfo{
		HStems:   []fixed.Int{fixed.FromInt(100)},
		VStems:   []fixed.Int{fixed.FromInt(50)},
		BotBands: []Band{{Lo: 0, Hi: fixed.FromInt(10)}},
		TopBands: []Band{{Lo: fixed.FromInt(90), Hi: fixed.FromInt(100)}},
		BlueFuzz: fixed.One,
	}
}

func TestDeterminism(t *testing.T) {
	fi := sampleFontInfo()

	run := func() string {
		p := buildSquare()
		ctx := NewContext(fi, Options{}, nil)
		res, err := ctx.Hint(p)
		require.NoError(t, err)
		return EmitHintedBez(p, res.Sets)
	}

	first := run()
	second := run()
	assert.Equal(t, first, second, "hinting the same glyph twice must produce byte-identical output")
}

func TestPathPreservationWhenEditDisabled(t *testing.T) {
	p := buildSquare()
	before := EmitBez(p)

	ctx := NewContext(sampleFontInfo(), Options{AllowEdit: false}, nil)
	_, err := ctx.Hint(p)
	require.NoError(t, err)

	assert.Equal(t, before, EmitBez(p), "disabling edits must leave the outline geometry untouched")
}

func TestHintPairOrdering(t *testing.T) {
	p := buildTwoStems()
	ctx := NewContext(sampleFontInfo(), Options{}, nil)
	res, err := ctx.Hint(p)
	require.NoError(t, err)
	require.NotEmpty(t, res.Sets)

	main := res.Sets[0]
	for _, hp := range main {
		assert.LessOrEqual(t, hp.Loc1, hp.Loc2, "a hint's two coordinates must be in ascending order")
	}
}

func TestNonOverlap(t *testing.T) {
	p := buildTwoStems()
	ctx := NewContext(sampleFontInfo(), Options{}, nil)
	res, err := ctx.Hint(p)
	require.NoError(t, err)

	byCode := map[byte][]HintPoint{}
	for _, hp := range res.Sets[0] {
		byCode[hp.Code] = append(byCode[hp.Code], hp)
	}
	for code, pts := range byCode {
		for i := range pts {
			for j := range pts {
				if i == j {
					continue
				}
				overlap := pts[i].Loc1 <= pts[j].Loc2 && pts[j].Loc1 <= pts[i].Loc2
				assert.False(t, overlap, "hints of code %c must not overlap: %+v vs %+v", code, pts[i], pts[j])
			}
		}
	}
}

func TestBandRespect(t *testing.T) {
	fi := sampleFontInfo()
	p := buildSquare()

	ctx := NewContext(fi, Options{}, nil)
	res, err := ctx.Hint(p)
	require.NoError(t, err)
	require.NotEmpty(t, res.Sets[0], "a square whose edges sit exactly on the font's blue zones must still produce a main hint set")

	// The square's only horizontal extents are y=0 and y=100, which are
	// also exactly the font's bottom and top blue zone edges; any
	// horizontal ('b') hint this glyph produces must anchor one side on
	// one of those two coordinates, since no other horizontal edge
	// exists in the outline for it to anchor on.
	for _, hp := range res.Sets[0] {
		if hp.Code != 'b' {
			continue
		}
		onBottom := hp.Loc1 == 0 || hp.Loc2 == 0
		onTop := hp.Loc1 == fixed.FromInt(100) || hp.Loc2 == fixed.FromInt(100)
		assert.True(t, onBottom || onTop, "horizontal hint %+v should anchor on one of the glyph's two horizontal edges", hp)
	}
}

func TestCounterGlyphKeepsMainSet(t *testing.T) {
	fi := sampleFontInfo()
	p := buildTwoStems()

	ctx := NewContext(fi, Options{}, nil).Name("m")
	res, err := ctx.Hint(p)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Sets[0], "counter-hinted glyph 'm' must still produce a main hint set")
}

func TestRoundTrip(t *testing.T) {
	p := buildSquare()
	text := EmitBez(p)

	reparsed, err := ParseBez(text)
	require.NoError(t, err)
	assert.Equal(t, text, EmitBez(reparsed), "re-emitting a reparsed outline must match the original text")
}

func TestMultipleMasterConsistency(t *testing.T) {
	source := buildSquare()
	ctx := NewContext(sampleFontInfo(), Options{}, nil)
	res, err := ctx.Hint(source)
	require.NoError(t, err)

	refs := mmtransfer.RecordReferences(source, res.Sets)

	other := buildSquare()
	transferred, err := mmtransfer.Transfer(source, other, refs)
	require.NoError(t, err)

	require.Equal(t, len(res.Sets), len(transferred))
	for i := range res.Sets {
		require.Equal(t, len(res.Sets[i]), len(transferred[i]), "bucket %d should carry the same hint count onto an identical master", i)
		for j := range res.Sets[i] {
			assertHintPointsClose(t, res.Sets[i][j], transferred[i][j])
		}
	}
}

func assertHintPointsClose(t *testing.T, want, got hintsubst.HintPoint) {
	t.Helper()
	assert.Equal(t, want.Code, got.Code)
	assert.Equal(t, want.Loc1, got.Loc1)
	assert.Equal(t, want.Loc2, got.Loc2)
}

package fontinfo

import "testing"

func TestParseFontInfoBasicZones(t *testing.T) {
	data := `FontName (MyFont)
BaselineYCoord 0
BaselineOvershoot -10
CapHeight 700
CapOvershoot 10
StemSnapH [ 70 90 ]
StemSnapV [ 120 ]
FlexOK true
`
	fi, err := ParseFontInfo(data)
	if err != nil {
		t.Fatalf("ParseFontInfo: %v", err)
	}
	if len(fi.BotBands) != 1 {
		t.Fatalf("BotBands = %v, want 1 entry", fi.BotBands)
	}
	if len(fi.TopBands) != 1 {
		t.Fatalf("TopBands = %v, want 1 entry", fi.TopBands)
	}
	if len(fi.HStems) != 2 {
		t.Fatalf("HStems = %v, want 2 entries", fi.HStems)
	}
	if len(fi.VStems) != 1 {
		t.Fatalf("VStems = %v, want 1 entry", fi.VStems)
	}
	if !fi.FlexOK {
		t.Errorf("FlexOK should be true")
	}
}

func TestParseFontInfoDominantFallback(t *testing.T) {
	data := `DominantH [ 50 100 150 ]`
	fi, err := ParseFontInfo(data)
	if err != nil {
		t.Fatalf("ParseFontInfo: %v", err)
	}
	if len(fi.HStems) != 3 {
		t.Fatalf("HStems fell back to DominantH incorrectly: %v", fi.HStems)
	}
}

func TestParseFontInfoStemsDeduplicatedAndSorted(t *testing.T) {
	data := `StemSnapV [ 120 80 120 90 ]`
	fi, err := ParseFontInfo(data)
	if err != nil {
		t.Fatalf("ParseFontInfo: %v", err)
	}
	if len(fi.VStems) != 3 {
		t.Fatalf("VStems = %v, want 3 unique entries", fi.VStems)
	}
	for i := 1; i < len(fi.VStems); i++ {
		if fi.VStems[i-1] >= fi.VStems[i] {
			t.Errorf("VStems not strictly ascending: %v", fi.VStems)
		}
	}
}

func TestParseFontInfoCounterChars(t *testing.T) {
	data := `VCounterChars (zero eight)`
	fi, err := ParseFontInfo(data)
	if err != nil {
		t.Fatalf("ParseFontInfo: %v", err)
	}
	if len(fi.VCounterChars) != 2 {
		t.Fatalf("VCounterChars = %v, want 2 entries", fi.VCounterChars)
	}
}

func TestParseFontInfoEmpty(t *testing.T) {
	fi, err := ParseFontInfo("")
	if err != nil {
		t.Fatalf("ParseFontInfo(\"\"): %v", err)
	}
	if len(fi.BotBands) != 0 || len(fi.TopBands) != 0 {
		t.Errorf("empty fontinfo should produce no zones")
	}
}

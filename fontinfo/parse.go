package fontinfo

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/appleboy/psautohint/fixed"
)

// entries lists the keywords ParseFontInfo recognizes, in the order
// the original engine's fontinfo.c:ParseFontInfo table declares them.
// Keeping the same order means a malformed or ambiguous abbreviation
// resolves identically to the source (ParseFontInfo matches the
// longest of the two lengths, first entry wins ties).
var entryKeys = []string{
	"OrigEmSqUnits", "FontName", "FlexOK",
	"BaselineOvershoot", "BaselineYCoord", "CapHeight", "CapOvershoot",
	"LcHeight", "LcOvershoot", "AscenderHeight", "AscenderOvershoot",
	"FigHeight", "FigOvershoot", "Height5", "Height5Overshoot",
	"Height6", "Height6Overshoot",
	"Baseline5Overshoot", "Baseline5", "Baseline6Overshoot", "Baseline6",
	"SuperiorOvershoot", "SuperiorBaseline", "OrdinalOvershoot",
	"OrdinalBaseline", "DescenderOvershoot", "DescenderHeight",
	"DominantV", "StemSnapV", "DominantH", "StemSnapH",
	"VCounterChars", "HCounterChars", "BlueFuzz", "FlexStrict",
}

// rawEntries is a parsed fontinfo text's keyword->raw-value-text map.
type rawEntries map[string]string

// ParseFontInfo tokenizes a fontinfo text blob (the ad hoc
// whitespace-delimited, PostScript-string/array-aware keyword/value
// format the original engine reads) into a FontInfo. It is an
// interoperability convenience, not the module's primary entry point;
// callers that already have structured font data should build a
// FontInfo directly. Grounded on fontinfo.c's ParseFontInfo tokenizer
// and ReadFontInfo's field extraction.
func ParseFontInfo(data string) (*FontInfo, error) {
	raw := tokenizeFontInfo(data)

	fi := &FontInfo{BlueFuzz: fixed.FromFloat64(1)}

	fi.FlexOK = boolField(raw, "FlexOK", false)
	fi.FlexStrict = boolField(raw, "FlexStrict", true)

	if v, ok := raw["BlueFuzz"]; ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("fontinfo: BlueFuzz: %w", err)
		}
		fi.BlueFuzz = fixed.FromFloat64(f)
	}

	var err error
	if fi.HStems, err = parseStems(raw, "StemSnapH"); err != nil {
		return nil, err
	}
	if len(fi.HStems) == 0 {
		if fi.HStems, err = parseStems(raw, "DominantH"); err != nil {
			return nil, err
		}
	}
	if fi.VStems, err = parseStems(raw, "StemSnapV"); err != nil {
		return nil, err
	}
	if len(fi.VStems) == 0 {
		if fi.VStems, err = parseStems(raw, "DominantV"); err != nil {
			return nil, err
		}
	}

	fi.VCounterChars = parseCharList(raw["VCounterChars"])
	fi.HCounterChars = parseCharList(raw["HCounterChars"])

	bot, top, err := parseBands(raw)
	if err != nil {
		return nil, err
	}
	fi.BotBands = bot
	fi.TopBands = top

	return fi, nil
}

func tokenizeFontInfo(data string) rawEntries {
	raw := make(rawEntries)
	s := data
	for {
		s = strings.TrimLeft(s, " \t\r\n")
		if s == "" {
			break
		}
		kwEnd := strings.IndexAny(s, " \t\r\n")
		if kwEnd < 0 {
			break
		}
		kw := s[:kwEnd]
		s = strings.TrimLeft(s[kwEnd:], " \t\r\n")

		var val string
		switch {
		case strings.HasPrefix(s, "("):
			end := matchingParen(s)
			val = s[:end]
			s = s[end:]
		case strings.HasPrefix(s, "["):
			end := strings.IndexByte(s, ']')
			if end < 0 {
				end = len(s) - 1
			}
			val = s[:end+1]
			s = s[end+1:]
		default:
			end := strings.IndexAny(s, " \t\r\n")
			if end < 0 {
				end = len(s)
			}
			val = s[:end]
			s = s[end:]
		}

		key := matchEntryKey(kw)
		if key != "" {
			raw[key] = val
		}
	}
	return raw
}

func matchingParen(s string) int {
	depth := 0
	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(s)
}

// matchEntryKey resolves an abbreviation to its canonical keyword the
// way ParseFontInfo's strncmp(key, token, max(len(key),len(token)))
// comparison does: a prefix match only counts if the shorter string is
// a strict prefix of the longer, first table entry wins ties.
func matchEntryKey(tok string) string {
	for _, k := range entryKeys {
		if k == tok {
			return k
		}
	}
	for _, k := range entryKeys {
		if strings.HasPrefix(k, tok) || strings.HasPrefix(tok, k) {
			return k
		}
	}
	return ""
}

func boolField(raw rawEntries, key string, negateOnFalseLiteral bool) bool {
	v, ok := raw[key]
	if !ok || v == "" {
		return false
	}
	if negateOnFalseLiteral {
		return v != "false"
	}
	return v != "false"
}

// parseStems parses a StemSnap{H,V}/Dominant{H,V} value: either a bare
// integer or a "[ n n n ... ]" array, returned sorted ascending with
// duplicates removed. Grounded on fontinfo.c's ParseIntStems.
func parseStems(raw rawEntries, key string) ([]fixed.Int, error) {
	v, ok := raw[key]
	if !ok || v == "" {
		return nil, nil
	}
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "[")
	v = strings.TrimSuffix(v, "]")
	fields := strings.Fields(v)
	if len(fields) > MaxStems {
		return nil, fmt.Errorf("fontinfo: %s has more than %d values", key, MaxStems)
	}
	vals := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("fontinfo: %s: %w", key, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("fontinfo: %s: value %d must be >= 1", key, n)
		}
		vals = append(vals, n)
	}
	sort.Ints(vals)
	out := make([]fixed.Int, 0, len(vals))
	for i, n := range vals {
		if i > 0 && n == vals[i-1] {
			continue
		}
		out = append(out, fixed.FromInt(n))
	}
	return out, nil
}

// parseCharList splits a "(a b c)"-style parenthesized, whitespace or
// comma-delimited glyph-name list. Grounded on fontinfo.c's
// ReadFontInfo / charprop.c's AddCounterHintGlyphs, which tokenizes on
// "(), \t\n\r".
func parseCharList(v string) []string {
	if v == "" {
		return nil
	}
	return strings.FieldsFunc(v, func(r rune) bool {
		switch r {
		case '(', ')', ' ', '\t', '\n', '\r', ',':
			return true
		}
		return false
	})
}

func intField(raw rawEntries, key string) (int, bool) {
	v, ok := raw[key]
	if !ok || v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseBands builds the bottom/top alignment-zone band lists from the
// baseline/overshoot keyword pairs, in the same zone order as
// fontinfo.c's ReadFontInfo so callers relying on index-based zone
// identity see matching behavior.
func parseBands(raw rawEntries) (bot, top []Band, err error) {
	pair := func(nameVal, nameOver string) (Band, bool) {
		v, ok1 := intField(raw, nameVal)
		o, ok2 := intField(raw, nameOver)
		if !ok1 || !ok2 {
			return Band{}, false
		}
		lo, hi := v, v+o
		if lo > hi {
			lo, hi = hi, lo
		}
		return Band{Lo: fixed.FromInt(lo), Hi: fixed.FromInt(hi)}, true
	}

	botPairs := [][2]string{
		{"BaselineYCoord", "BaselineOvershoot"},
		{"Baseline5", "Baseline5Overshoot"},
		{"Baseline6", "Baseline6Overshoot"},
		{"SuperiorBaseline", "SuperiorOvershoot"},
		{"OrdinalBaseline", "OrdinalOvershoot"},
		{"DescenderHeight", "DescenderOvershoot"},
	}
	for _, p := range botPairs {
		if b, ok := pair(p[0], p[1]); ok {
			bot = append(bot, b)
		}
	}

	topPairs := [][2]string{
		{"CapHeight", "CapOvershoot"},
		{"LcHeight", "LcOvershoot"},
		{"AscenderHeight", "AscenderOvershoot"},
		{"FigHeight", "FigOvershoot"},
		{"Height5", "Height5Overshoot"},
		{"Height6", "Height6Overshoot"},
	}
	for _, p := range topPairs {
		if b, ok := pair(p[0], p[1]); ok {
			top = append(top, b)
		}
	}

	if len(bot) > MaxBlues/2 || len(top) > MaxBlues/2 {
		return nil, nil, fmt.Errorf("fontinfo: too many alignment zones")
	}
	return bot, top, nil
}

package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

// cellTyper resolves typed values for raw xlsx cell text. Date detection
// results are cached per style index since styles are workbook-wide.
type cellTyper struct {
	f          *excelize.File
	date1904   bool
	dateStyles map[int]bool
}

func newCellTyper(f *excelize.File) *cellTyper {
	t := &cellTyper{f: f, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		t.date1904 = *props.Date1904
	}
	return t
}

// value returns the typed value of the cell at ref whose raw text is raw.
// Strings stay strings even when they look numeric.
func (t *cellTyper) value(sheet, ref, raw string) (interface{}, error) {
	typ, err := t.f.GetCellType(sheet, ref)
	if err != nil {
		return nil, err
	}

	v, numeric := typedValue(typ, raw)
	if !numeric {
		return v, nil
	}
	var serial float64
	switch n := v.(type) {
	case int64:
		serial = float64(n)
	case float64:
		serial = n
	}

	isDate, err := t.isDateCell(sheet, ref)
	if err != nil {
		return nil, err
	}
	if isDate {
		if ts, err := excelize.ExcelDateToTime(serial, t.date1904); err == nil {
			return ts, nil
		}
	}
	return v, nil
}

// typedValue converts raw cell text by its stored type. numeric reports a
// number whose style may still make it a date.
func typedValue(typ excelize.CellType, raw string) (v interface{}, numeric bool) {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeError:
		return raw, false
	case excelize.CellTypeFormula:
		// t="str": the cached result of a formula is always text.
		return raw, false
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), false
	case excelize.CellTypeDate:
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			return ts, false
		}
		return raw, false
	}

	v = parseValue(raw)
	switch v.(type) {
	case int64, float64:
		return v, true
	}
	return v, false
}

func (t *cellTyper) isDateCell(sheet, ref string) (bool, error) {
	idx, err := t.f.GetCellStyle(sheet, ref)
	if err != nil {
		return false, err
	}
	if isDate, ok := t.dateStyles[idx]; ok {
		return isDate, nil
	}

	isDate := false
	if style, err := t.f.GetStyle(idx); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		} else {
			isDate = isBuiltInDateFormat(style.NumFmt)
		}
	}
	t.dateStyles[idx] = isDate
	return isDate, nil
}

// isBuiltInDateFormat reports whether a built-in number format ID renders
// dates or times, including the East Asian locale IDs.
func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom number format code contains
// date or time tokens outside of literals and bracketed sections.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++
		default:
			b.WriteByte(c)
		}
	}
	s := strings.ToLower(b.String())
	if strings.Contains(s, "general") {
		return false
	}
	return strings.ContainsAny(s, "ydh") || strings.Contains(s, "ss")
}

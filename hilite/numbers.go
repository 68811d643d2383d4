package hilite

// digitRun matches `c(_?c)*` for the byte class is at pos and returns the
// offset past it, or -1 if src[pos] is not in the class.
func digitRun(src []byte, pos int, is func(byte) bool) int {
	if pos >= len(src) || !is(src[pos]) {
		return -1
	}
	return separatedRun(src, pos+1, is)
}

// separatedRun matches `(_?c)*` greedily and returns the offset past it.
func separatedRun(src []byte, pos int, is func(byte) bool) int {
	for pos < len(src) {
		switch {
		case is(src[pos]):
			pos++
		case src[pos] == '_' && pos+1 < len(src) && is(src[pos+1]):
			pos += 2
		default:
			return pos
		}
	}
	return pos
}

// exponent matches an optional `[eE][+-]?digits` at pos and returns the
// offset past it, or pos when there is none.
func exponent(src []byte, pos int) int {
	if c := at(src, pos); c != 'e' && c != 'E' {
		return pos
	}
	i := pos + 1
	if c := at(src, i); c == '+' || c == '-' {
		i++
	}
	if end := digitRun(src, i, isDigit); end > 0 {
		return end
	}
	return pos
}

func matchNumber(src []byte, pos int) int {
	for _, fn := range []func([]byte, int) int{decimalFloat, exponentOnly, dotFloat} {
		if end := fn(src, pos); end > 0 {
			return end - pos
		}
	}
	if !wordStart(src, pos) {
		return 0
	}
	for _, fn := range []func([]byte, int) int{hexFloat, decimalInt, hexInt, octalInt, zero} {
		if end := fn(src, pos); end > 0 && wordEnd(src, end) {
			return end - pos
		}
	}
	return 0
}

// 1_000.5e-3, 1.
func decimalFloat(src []byte, pos int) int {
	end := digitRun(src, pos, isDigit)
	if end < 0 || at(src, end) != '.' {
		return -1
	}
	end++
	if frac := digitRun(src, end, isDigit); frac > 0 {
		end = frac
	}
	return exponent(src, end)
}

// 1e9
func exponentOnly(src []byte, pos int) int {
	end := digitRun(src, pos, isDigit)
	if end < 0 {
		return -1
	}
	if exp := exponent(src, end); exp > end {
		return exp
	}
	return -1
}

// .5, .5e3
func dotFloat(src []byte, pos int) int {
	if at(src, pos) != '.' {
		return -1
	}
	end := digitRun(src, pos+1, isDigit)
	if end < 0 {
		return -1
	}
	return exponent(src, end)
}

func hexPrefix(src []byte, pos int) bool {
	return at(src, pos) == '0' && (at(src, pos+1) == 'x' || at(src, pos+1) == 'X')
}

// 0x1.8p-3
func hexFloat(src []byte, pos int) int {
	if !hexPrefix(src, pos) {
		return -1
	}
	end := separatedRun(src, pos+2, isHex)
	if at(src, end) == '.' {
		end = separatedRun(src, end+1, isHex)
	}
	if c := at(src, end); c != 'p' && c != 'P' {
		return -1
	}
	end++
	if c := at(src, end); c == '+' || c == '-' {
		end++
	}
	start := end
	for end < len(src) && isDigit(src[end]) {
		end++
	}
	if end == start {
		return -1
	}
	return end
}

// 1_000
func decimalInt(src []byte, pos int) int {
	if c := at(src, pos); c < '1' || c > '9' {
		return -1
	}
	return separatedRun(src, pos+1, isDigit)
}

// 0xFF_FF
func hexInt(src []byte, pos int) int {
	if !hexPrefix(src, pos) {
		return -1
	}
	end := separatedRun(src, pos+2, isHex)
	if end == pos+2 {
		return -1
	}
	return end
}

// 0o17, 017
func octalInt(src []byte, pos int) int {
	if at(src, pos) != '0' {
		return -1
	}
	i := pos + 1
	if c := at(src, i); c == 'o' || c == 'O' {
		i++
	}
	end := separatedRun(src, i, isOctal)
	if end == i {
		return -1
	}
	return end
}

func zero(src []byte, pos int) int {
	if at(src, pos) != '0' {
		return -1
	}
	return pos + 1
}

package hilite

// matcher reports how many bytes of src starting at pos belong to its class,
// or 0 when it does not match there. It may look behind pos for word
// boundaries but never consumes bytes before it.
type matcher func(src []byte, pos int) int

type rule struct {
	class Class
	match matcher
}

// rules are tried in order at every position; the first one that matches
// wins regardless of how much the later ones would consume.
var rules = []rule{
	{Comment, matchComment},
	{String, matchString},
	{Keyword, matchKeyword},
	{Operator, matchOperator},
	{Identifier, matchIdentifier},
	{Number, matchNumber},
	{Delimiter, matchDelimiter},
	{Error, matchError},
}

// Classify splits src into an ordered sequence of non-overlapping matches.
// Positions where no rule matches (whitespace) are left out.
func Classify(src []byte) []Match {
	var matches []Match
	for pos := 0; pos < len(src); {
		m, ok := classifyAt(src, pos)
		if !ok {
			pos++
			continue
		}
		matches = append(matches, m)
		pos = m.End + 1
	}
	return matches
}

func classifyAt(src []byte, pos int) (Match, bool) {
	for _, r := range rules {
		if n := r.match(src, pos); n > 0 {
			return Match{Start: pos, End: pos + n - 1, Class: r.class}, true
		}
	}
	return Match{}, false
}

package hilite

// Class is the lexical category of a Match. The constants are declared in
// priority order: when two classes could match at the same position the
// lower value wins.
type Class int

const (
	Comment Class = iota
	String
	Keyword
	Operator
	Identifier
	Number
	Delimiter
	Error
)

var Classes = []Class{Comment, String, Keyword, Operator, Identifier, Number, Delimiter, Error}

var classNames = map[Class]string{
	Comment:    "comment",
	String:     "string",
	Keyword:    "keyword",
	Operator:   "operator",
	Identifier: "identifier",
	Number:     "number",
	Delimiter:  "delimiter",
	Error:      "error",
}

func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "unknown"
}

// Match is a classified span of the source. End is inclusive.
type Match struct {
	Start int
	End   int
	Class Class
}

func (m Match) Text(src []byte) string {
	return string(src[m.Start : m.End+1])
}

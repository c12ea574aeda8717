package style

// Stylesheet is an ordered sequence of rules. Order is load-bearing:
// the cascade resolves conflicts by rule position alone.
type Stylesheet struct {
	Rules []Rule
}

// Empty checks if this stylesheet contains any rules.
func (sheet *Stylesheet) Empty() bool {
	return sheet == nil || len(sheet.Rules) == 0
}

// Append appends the rules from another stylesheet, preserving order.
// This is how the user-agent sheet and document-embedded sheets are
// assembled into one cascade.
func (sheet *Stylesheet) Append(other *Stylesheet) {
	if other == nil {
		return
	}
	sheet.Rules = append(sheet.Rules, other.Rules...)
}

// Rule pairs a selector list with a declaration list. A rule matches a
// node if any of its selectors does.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// Declaration sets one property to a value.
type Declaration struct {
	Property string
	Value    Value
}

// Selector is the closed set of simple selectors. Dispatch with a type
// switch; matching lives in match.go.
type Selector interface {
	isSelector()
}

// UniversalSelector is '*'.
type UniversalSelector struct{}

// TypeSelector selects elements by tag name.
type TypeSelector struct {
	TagName string
}

// ClassSelector is '.name'.
type ClassSelector struct {
	ClassName string
}

// AttributeSelector is 'tag [attr=value]' or 'tag [attr~=value]'.
type AttributeSelector struct {
	TagName   string
	Op        AttrOp
	Attribute string
	Value     string
}

func (UniversalSelector) isSelector() {}
func (TypeSelector) isSelector()      {}
func (ClassSelector) isSelector()     {}
func (AttributeSelector) isSelector() {}

// AttrOp is the comparison operator of an attribute selector.
type AttrOp uint8

const (
	OpEq       AttrOp = iota // '='
	OpContains               // '~='
)

func (op AttrOp) String() string {
	if op == OpContains {
		return "~="
	}
	return "="
}

// UserAgent is the engine's default stylesheet. It is prepended to the
// document's embedded style text before parsing, so document rules win
// by cascade order.
const UserAgent = `
script, style {
    display: none;
}
p, div, body, html {
    display: block;
}
span {
    display: inline;
}
`

package style

// Value is the value of a style declaration. The set of value kinds is
// closed; Keyword is currently the only variant. Dispatch with a type
// switch.
type Value interface {
	isValue()
}

// Keyword is a bare keyword value, e.g. the "block" in "display: block".
type Keyword string

func (Keyword) isValue() {}

func (k Keyword) String() string {
	return string(k)
}

// PropertyMap maps property names to their resolved values for one node.
// It is the result of the cascade: the last matching declaration for a
// name wins.
type PropertyMap map[string]Value

// Property returns the value for a property name.
func (pm PropertyMap) Property(key string) (Value, bool) {
	v, ok := pm[key]
	return v, ok
}

// KeywordOr returns the keyword value for a property name, or fallback if
// the property is unset or not a keyword.
func (pm PropertyMap) KeywordOr(key string, fallback string) string {
	if v, ok := pm[key]; ok {
		if kw, ok := v.(Keyword); ok {
			return string(kw)
		}
	}
	return fallback
}

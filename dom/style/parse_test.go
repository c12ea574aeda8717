package style

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseSingleRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	sheet, err := Parse("p { display: block; }")
	if err != nil {
		t.Fatalf("expected stylesheet to parse, error is %v", err)
	}
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, have %d", len(sheet.Rules))
	}
	rule := sheet.Rules[0]
	if len(rule.Selectors) != 1 {
		t.Fatalf("expected 1 selector, have %d", len(rule.Selectors))
	}
	if sel, ok := rule.Selectors[0].(TypeSelector); !ok || sel.TagName != "p" {
		t.Errorf("expected type selector 'p', have %v", rule.Selectors[0])
	}
	if len(rule.Declarations) != 1 {
		t.Fatalf("expected 1 declaration, have %d", len(rule.Declarations))
	}
	decl := rule.Declarations[0]
	if decl.Property != "display" || decl.Value != Keyword("block") {
		t.Errorf("expected (display, block), have (%s, %v)", decl.Property, decl.Value)
	}
}

func TestParseMultipleRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	sheet, err := Parse("test [foo=bar] { aa: bb; cc: dd; } rule { ee: dd; }")
	if err != nil {
		t.Fatalf("expected stylesheet to parse, error is %v", err)
	}
	if len(sheet.Rules) != 2 {
		t.Fatalf("expected 2 rules, have %d", len(sheet.Rules))
	}
	attr, ok := sheet.Rules[0].Selectors[0].(AttributeSelector)
	if !ok {
		t.Fatalf("expected an attribute selector, have %v", sheet.Rules[0].Selectors[0])
	}
	if attr.TagName != "test" || attr.Attribute != "foo" || attr.Value != "bar" || attr.Op != OpEq {
		t.Errorf("expected test[foo=bar], have %+v", attr)
	}
	if len(sheet.Rules[0].Declarations) != 2 {
		t.Errorf("expected 2 declarations in first rule, have %d", len(sheet.Rules[0].Declarations))
	}
	if sel, ok := sheet.Rules[1].Selectors[0].(TypeSelector); !ok || sel.TagName != "rule" {
		t.Errorf("expected type selector 'rule', have %v", sheet.Rules[1].Selectors[0])
	}
}

func TestParseSelectorList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	sheet, err := Parse("test [foo=bar], testtest[piyo~=guoo] {}")
	if err != nil {
		t.Fatalf("expected stylesheet to parse, error is %v", err)
	}
	rule := sheet.Rules[0]
	if len(rule.Selectors) != 2 {
		t.Fatalf("expected 2 selectors, have %d", len(rule.Selectors))
	}
	second, ok := rule.Selectors[1].(AttributeSelector)
	if !ok || second.Op != OpContains {
		t.Errorf("expected testtest[piyo~=guoo] with the contains-op, have %+v", rule.Selectors[1])
	}
	if len(rule.Declarations) != 0 {
		t.Errorf("expected an empty declaration block, have %d declarations", len(rule.Declarations))
	}
}

func TestParseUniversalAndClassSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	sheet, err := Parse("* { aa: bb; }\n.test { cc: dd; }")
	if err != nil {
		t.Fatalf("expected stylesheet to parse, error is %v", err)
	}
	if _, ok := sheet.Rules[0].Selectors[0].(UniversalSelector); !ok {
		t.Errorf("expected a universal selector, have %v", sheet.Rules[0].Selectors[0])
	}
	cls, ok := sheet.Rules[1].Selectors[0].(ClassSelector)
	if !ok || cls.ClassName != "test" {
		t.Errorf("expected class selector .test, have %v", sheet.Rules[1].Selectors[0])
	}
}

func TestParseTrailingSemicolonOptional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	for _, input := range []string{
		"p { aa: bb; cc: dd; }",
		"p { aa: bb; cc: dd }",
	} {
		sheet, err := Parse(input)
		if err != nil {
			t.Fatalf("expected %q to parse, error is %v", input, err)
		}
		if len(sheet.Rules[0].Declarations) != 2 {
			t.Errorf("expected 2 declarations for %q, have %d", input, len(sheet.Rules[0].Declarations))
		}
	}
}

func TestParseInvalidAttrOp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	_, err := Parse("a[href|=x] { aa: bb; }")
	if err == nil {
		t.Fatal("expected '|=' to be rejected, isn't")
	}
	if !errors.Is(err, ErrInvalidAttrOp) {
		t.Errorf("expected the distinguished attribute-op error, is %v", err)
	}
}

func TestParseGenericErrorCarriesPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	_, err := Parse("p { display block; }")
	if err == nil {
		t.Fatal("expected missing ':' to be rejected, isn't")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a position-carrying error, is %v", err)
	}
	if perr.Pos <= 0 {
		t.Errorf("expected a position into the input, is %d", perr.Pos)
	}
}

func TestParseWhitespaceTolerance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	sheet, err := Parse("\n\n  p ,  div {\n\taa : bb ;\n}\n\n")
	if err != nil {
		t.Fatalf("expected whitespace-heavy stylesheet to parse, error is %v", err)
	}
	if len(sheet.Rules) != 1 || len(sheet.Rules[0].Selectors) != 2 {
		t.Errorf("expected 1 rule with 2 selectors, have %+v", sheet.Rules)
	}
}

func TestParseUserAgentSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	sheet, err := Parse(UserAgent)
	if err != nil {
		t.Fatalf("expected the user-agent sheet to parse, error is %v", err)
	}
	if sheet.Empty() {
		t.Error("expected the user-agent sheet to carry rules, doesn't")
	}
}

func TestSheetAppendPreservesOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.style")
	defer teardown()
	//
	a, err := Parse("p { display: block; }")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("p { display: inline; }")
	if err != nil {
		t.Fatal(err)
	}
	a.Append(b)
	if len(a.Rules) != 2 {
		t.Fatalf("expected 2 rules after append, have %d", len(a.Rules))
	}
	last := a.Rules[1].Declarations[0]
	if last.Value != Keyword("inline") {
		t.Errorf("expected the appended rule to come last, last value is %v", last.Value)
	}
}

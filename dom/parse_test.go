package dom

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.dom")
	defer teardown()
	//
	nodes, err := ParseNodes("hello world")
	if err != nil {
		t.Fatalf("expected text to parse, error is %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, have %d", len(nodes))
	}
	txt, ok := nodes[0].Type.(Text)
	if !ok {
		t.Fatalf("expected a text node, have %T", nodes[0].Type)
	}
	if txt.Data != "hello world" {
		t.Errorf("expected text payload to be 'hello world', is %q", txt.Data)
	}
}

func TestParseEmptyElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.dom")
	defer teardown()
	//
	node, err := Parse("<p></p>")
	if err != nil {
		t.Fatalf("expected element to parse, error is %v", err)
	}
	e, ok := node.Type.(Element)
	if !ok {
		t.Fatalf("expected an element node, have %T", node.Type)
	}
	if e.TagName != "p" {
		t.Errorf("expected tag name 'p', is %q", e.TagName)
	}
	if len(node.Children) != 0 {
		t.Errorf("expected no children, have %d", len(node.Children))
	}
}

func TestParseElementWithText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.dom")
	defer teardown()
	//
	node, err := Parse("<p>hello world</p>")
	if err != nil {
		t.Fatalf("expected element to parse, error is %v", err)
	}
	if node.InnerText() != "hello world" {
		t.Errorf("expected inner text 'hello world', is %q", node.InnerText())
	}
}

func TestParseAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.dom")
	defer teardown()
	//
	node, err := Parse(`<p id="test" class="sample">x</p>`)
	if err != nil {
		t.Fatalf("expected element to parse, error is %v", err)
	}
	e := node.Type.(Element)
	if len(e.Attributes) != 2 {
		t.Fatalf("expected 2 attributes, have %d", len(e.Attributes))
	}
	if e.Attributes["id"] != "test" || e.Attributes["class"] != "sample" {
		t.Errorf("expected id/class attributes, have %v", e.Attributes)
	}
}

func TestParseAttributeWithSpaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.dom")
	defer teardown()
	//
	node, err := Parse(`<p id = "test">x</p>`)
	if err != nil {
		t.Fatalf("expected element to parse, error is %v", err)
	}
	if v, _ := node.Attr("id"); v != "test" {
		t.Errorf("expected attribute id to be 'test', is %q", v)
	}
}

func TestParseDuplicateAttributeLastWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.dom")
	defer teardown()
	//
	node, err := Parse(`<p id="a" id="b">x</p>`)
	if err != nil {
		t.Fatalf("expected element to parse, error is %v", err)
	}
	if v, _ := node.Attr("id"); v != "b" {
		t.Errorf("expected duplicate attribute to take the last value, is %q", v)
	}
}

func TestParseInvalidAttribute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.dom")
	defer teardown()
	//
	_, err := Parse(`<p id>x</p>`)
	if err == nil {
		t.Error("expected '<p id>' to be rejected, isn't")
	}
}

func TestParseNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.dom")
	defer teardown()
	//
	node, err := Parse(`<div class="x"><p>hi</p></div>`)
	if err != nil {
		t.Fatalf("expected markup to parse, error is %v", err)
	}
	if len(node.Children) != 1 {
		t.Fatalf("expected 1 child, have %d", len(node.Children))
	}
	inner := node.Children[0]
	if e, ok := inner.Type.(Element); !ok || e.TagName != "p" {
		t.Errorf("expected inner element 'p', have %v", inner.Type)
	}
	if inner.InnerText() != "hi" {
		t.Errorf("expected inner text 'hi', is %q", inner.InnerText())
	}
}

func TestParseTagMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.dom")
	defer teardown()
	//
	_, err := Parse("<a><b></a></b>")
	if err == nil {
		t.Fatal("expected mismatched tags to fail, didn't")
	}
	if !errors.Is(err, ErrTagMismatch) {
		t.Errorf("expected a tag-mismatch error, is %v", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("expected error to carry a position, doesn't: %v", err)
	}
}

func TestParseTrailingInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.dom")
	defer teardown()
	//
	_, err := ParseNodes("<a>")
	if err == nil {
		t.Fatal("expected unclosed element to fail, didn't")
	}
	if !errors.Is(err, ErrTrailingInput) {
		t.Errorf("expected a trailing-input error, is %v", err)
	}
}

func TestParseMultipleRootsGetWrapped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.dom")
	defer teardown()
	//
	node, err := Parse("<p>a</p><p>b</p>")
	if err != nil {
		t.Fatalf("expected markup to parse, error is %v", err)
	}
	e, ok := node.Type.(Element)
	if !ok || e.TagName != "html" {
		t.Fatalf("expected a synthetic html root, have %v", node.Type)
	}
	if len(node.Children) != 2 {
		t.Errorf("expected 2 children under the synthetic root, have %d", len(node.Children))
	}
}

func TestParseRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "weft.dom")
	defer teardown()
	//
	inputs := []string{
		"<p>hello world</p>",
		`<div class="x"><p>hi</p><p>ho</p></div>`,
		"<body><div>a<span>b</span>c</div></body>",
	}
	for _, input := range inputs {
		node, err := Parse(input)
		if err != nil {
			t.Fatalf("expected %q to parse, error is %v", input, err)
		}
		again, err := Parse(node.OuterHTML())
		if err != nil {
			t.Fatalf("expected serialized form of %q to re-parse, error is %v", input, err)
		}
		if node.OuterHTML() != again.OuterHTML() {
			t.Errorf("round trip of %q changed content:\n%s\n%s", input, node.OuterHTML(), again.OuterHTML())
		}
	}
}

package render

import (
	"strings"
	"sync"

	"github.com/npillmayer/weft/dom"
	"github.com/npillmayer/weft/dom/style"
	"github.com/npillmayer/weft/dom/styledtree"
	"github.com/npillmayer/weft/layout"
	"github.com/npillmayer/weft/script"
)

// Renderer drives the full pipeline over a shared document tree.
//
// The document may be mutated by the embedded script sandbox between
// passes; Renderer serializes access with a mutex at the tree root, the
// one concurrency point of the system. Every Render call re-runs the
// whole pipeline (assemble stylesheet, resolve styles, build layout,
// draw) with no caching.
type Renderer struct {
	mu       sync.Mutex
	document *dom.Node
	scripts  *script.Runtime
}

// New creates a renderer owning the given document root. The document
// should no longer be accessed directly by the caller.
func New(document *dom.Node) *Renderer {
	r := &Renderer{document: document}
	r.scripts = script.NewRuntime(document)
	r.scripts.OnMutate(func() {
		tracer().Debugf("renderer: document mutated by a script")
	})
	return r
}

// Stylesheet assembles the document's effective stylesheet: the
// user-agent sheet, followed by the text content of every <style>
// element in document order.
func (r *Renderer) Stylesheet() (*style.Stylesheet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stylesheet()
}

func (r *Renderer) stylesheet() (*style.Stylesheet, error) {
	embedded := dom.CollectTagInners(r.document, "style")
	text := style.UserAgent + "\n" + strings.Join(embedded, "\n")
	return style.Parse(text)
}

// Layout runs the styling pipeline and returns the document's layout
// tree. The tree is nil if the whole document resolves to display:none.
func (r *Renderer) Layout() (*layout.LayoutBox, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.layout()
}

func (r *Renderer) layout() (*layout.LayoutBox, error) {
	sheet, err := r.stylesheet()
	if err != nil {
		return nil, err
	}
	styled := styledtree.Resolve(r.document, sheet)
	return layout.Build(styled), nil
}

// Render runs the whole pipeline and draws the result.
func (r *Renderer) Render() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	box, err := r.layout()
	if err != nil {
		return "", err
	}
	tracer().Debugf("renderer: drawing a fresh pass")
	return Draw(box), nil
}

// Styled runs style resolution only. Useful for diagnostic dumps.
func (r *Renderer) Styled() (*styledtree.StyledNode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sheet, err := r.stylesheet()
	if err != nil {
		return nil, err
	}
	return styledtree.Resolve(r.document, sheet), nil
}

// ExecuteInlineScripts collects the text of every <script> element in
// document order and runs it in the embedded sandbox. Scripts may
// mutate the document; the next Render pass picks the mutation up.
func (r *Renderer) ExecuteInlineScripts() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	src := strings.Join(dom.CollectTagInners(r.document, "script"), "\n")
	if strings.TrimSpace(src) == "" {
		return nil
	}
	_, err := r.scripts.Execute("(inline)", src)
	return err
}

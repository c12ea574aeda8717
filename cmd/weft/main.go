// weft parses a markup document, styles it and prints the result as
// terminal panels. Alternative outputs show the layout tree or a
// GraphViz dump of the styled document tree. Without an input file a
// bundled sample document is used.
package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/npillmayer/weft/dom"
	"github.com/npillmayer/weft/dom/domdbg"
	"github.com/npillmayer/weft/layout"
	"github.com/npillmayer/weft/render"
)

// sampleDocument is shown when no input file is given. The script text
// escapes '<' as \x3c because a text run may not contain markup.
const sampleDocument = `<body>
    <p>hello</p>
    <span>world</span>
    <span>:)</span>
    <aside><p>this should not be shown</p></aside>
    <style>
        aside {
            display: none;
        }
    </style>
    <div id="result">
        <p>not loaded</p>
    </div>
    <script>
        document.getElementById("result").innerHTML = "\x3cp\x3eloaded\x3c/p\x3e"
    </script>
</body>`

func main() {
	cmd := &cli.Command{
		Name:      "weft",
		Usage:     "style and lay out a markup document",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "boxes",
				Usage: "print the layout tree instead of rendering",
			},
			&cli.BoolFlag{
				Name:  "dot",
				Usage: "print a GraphViz dump of the styled document tree",
			},
			&cli.BoolFlag{
				Name:  "scripts",
				Usage: "execute inline scripts before rendering",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "weft: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	input := sampleDocument
	if cmd.NArg() > 0 {
		raw, err := os.ReadFile(cmd.Args().Get(0))
		if err != nil {
			return err
		}
		input = string(raw)
	}
	root, err := dom.Parse(input)
	if err != nil {
		return err
	}
	renderer := render.New(root)
	if cmd.Bool("scripts") {
		if err := renderer.ExecuteInlineScripts(); err != nil {
			return err
		}
	}
	switch {
	case cmd.Bool("dot"):
		styled, err := renderer.Styled()
		if err != nil {
			return err
		}
		domdbg.ToGraphViz(styled, os.Stdout)
	case cmd.Bool("boxes"):
		box, err := renderer.Layout()
		if err != nil {
			return err
		}
		fmt.Print(layout.Sprint(box))
	default:
		out, err := renderer.Render()
		if err != nil {
			return err
		}
		fmt.Println(out)
	}
	return nil
}

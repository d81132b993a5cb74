// Command treedump is a small demonstration front end over green/red: it
// builds a sample tree, renders it, exercises a detach/reattach edit, and
// prints a table of the root's child kinds. It is not part of the library's public
// surface — green and red expose no CLI of their own.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/gloudx/treecore/green"
	"github.com/gloudx/treecore/red"
)

const (
	appName    = "treedump"
	appVersion = "1.0.0"
)

func main() {
	app := &cli.App{
		Name:    appName,
		Usage:   "Build and inspect a sample red-green syntax tree",
		Version: appVersion,
		Commands: []*cli.Command{
			{
				Name:   "render",
				Usage:  "Render the sample tree",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "compact",
						Aliases: []string{"c"},
						Usage:   "Print the one-line compact form instead of the indented dump",
					},
				},
				Action: renderCmd,
			},
			{
				Name:   "edit-demo",
				Usage:  "Detach the first child, reattach it at the end, and print a table of the root's child kinds",
				Action: editDemoCmd,
			},
			{
				Name:   "fingerprint",
				Usage:  "Print the sample tree's content fingerprint",
				Action: fingerprintCmd,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("treedump: %v", err)
	}
}

func sampleTree() green.Tree {
	inner := green.NewBuilder("PAREN").
		PushToken(green.NewToken("LPAREN", "(")).
		PushToken(green.NewToken("NUMBER", "9")).
		PushToken(green.NewToken("RPAREN", ")")).
		Finish()

	return green.NewBuilder("EXPR").
		PushTree(inner).
		PushToken(green.NewToken("PLUS", "+")).
		PushToken(green.NewToken("NUMBER", "3")).
		Finish()
}

func renderCmd(c *cli.Context) error {
	tr := sampleTree()
	if c.Bool("compact") {
		fmt.Println(tr.RenderCompact())
		return nil
	}
	fmt.Print(tr.RenderIndented())
	return nil
}

func editDemoCmd(c *cli.Context) error {
	root := red.NewRoot(sampleTree())
	defer root.Release()

	log.Printf("built sample tree with %d children", root.NumChildren())

	first, ok := root.FirstChild()
	if !ok {
		return fmt.Errorf("sample tree unexpectedly has no children")
	}
	firstKind := first.Kind()

	tr, isTree := first.FindTree()
	if !isTree {
		return fmt.Errorf("expected the first child to be a tree")
	}
	pure := tr.Pure()

	first.Detach()
	log.Printf("detached first child (kind=%s); root now has %d children", firstKind, root.NumChildren())

	root.InsertChild(root.NumChildren(), green.TreeChild(pure))
	log.Printf("reattached it at the end; root now has %d children", root.NumChildren())

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.SetTitle("treedump: child kinds after edit")
	t.AppendHeader(table.Row{"index", "kind"})
	for child := range root.Children() {
		t.AppendRow(table.Row{child.Index(), child.Kind()})
		child.Release()
	}
	t.Render()

	// the detached subtree (first/tr) is now a standalone root of its own;
	// we only needed its pure snapshot, so release our only handle to it.
	first.Release()

	return nil
}

func fingerprintCmd(c *cli.Context) error {
	tr := sampleTree()
	fmt.Println(tr.Fingerprint().String())
	return nil
}

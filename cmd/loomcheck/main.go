package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/loomui/loom"
	"github.com/loomui/loom/internal/headless"
	"github.com/loomui/loom/layout"
	"github.com/loomui/loom/tw"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "classes":
		err = runClasses(args)
	case "layout":
		err = runLayout(args)
	case "version", "-v", "--version":
		fmt.Printf("loomcheck version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`loomcheck - Loom layout and class checker

Usage: loomcheck <command> [options]

Commands:
  classes "<class string>"  Parse a class string and print the resolved style
  layout <file.yaml>        Load a layout file and print the widget tree
  version                   Print version information
  help                      Show this help message`)
}

// loadTheme applies loom.toml palette overrides when the file exists.
func loadTheme() error {
	cfg, err := loom.LoadConfig("loom.toml")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return cfg.ApplyTheme()
}

func runClasses(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: loomcheck classes \"<class string>\"")
	}
	if err := loadTheme(); err != nil {
		return err
	}

	s := tw.Parse(args[0])

	if s.Flex {
		fmt.Printf("flex:    %s justify=%s items=%s\n", s.Flow, s.Justify, s.Items)
	}
	fmt.Printf("size:    w=%s h=%s\n", s.Width, s.Height)
	fmt.Printf("padding: t=%s b=%s l=%s r=%s row=%s col=%s\n",
		s.PadTop, s.PadBottom, s.PadLeft, s.PadRight, s.PadRow, s.PadColumn)
	if s.BgColor != nil {
		fmt.Printf("bg:      %s opa=%d\n", *s.BgColor, s.BgOpacity)
	}
	if s.BorderWidth != 0 || s.BorderColor != nil || s.Radius != 0 {
		fmt.Printf("border:  width=%s", s.BorderWidth)
		if s.BorderColor != nil {
			fmt.Printf(" color=%s", *s.BorderColor)
		}
		fmt.Printf(" radius=%s\n", s.Radius)
	}
	if s.TextColor != nil {
		fmt.Printf("text:    color=%s\n", *s.TextColor)
	}
	if s.Font != tw.FontUnset {
		fmt.Printf("font:    %dpx\n", s.Font.Size())
	}
	return nil
}

func runLayout(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: loomcheck layout <file.yaml>")
	}
	if err := loadTheme(); err != nil {
		return err
	}

	// Handler names resolve to no-op callbacks: the check only cares
	// that the file loads and builds.
	loader := layout.Loader{AllowUnbound: true}
	root, err := loader.Load(args[0])
	if err != nil {
		return err
	}

	backend := headless.New()
	session, err := loom.New(backend, loom.ProducerFunc(func() (*loom.Node, error) {
		return root, nil
	}), nil)
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.Render(nil); err != nil {
		return err
	}

	printTree(backend.Root, 0)
	fmt.Printf("%d handler(s) registered\n", session.Registry().Len())
	return nil
}

func printTree(w *headless.Widget, depth int) {
	for _, child := range w.Children {
		indent := ""
		for i := 0; i < depth; i++ {
			indent += "  "
		}
		fmt.Printf("%s- %s", indent, child.Kind)
		if child.Text != "" {
			fmt.Printf(" %q", child.Text)
		}
		if len(child.Subs) > 0 {
			fmt.Printf(" (%d subscription(s))", len(child.Subs))
		}
		fmt.Println()
		printTree(child, depth+1)
	}
}

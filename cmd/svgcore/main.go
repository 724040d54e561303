// Command svgcore is the CLI front door exercising the three harness
// operations: validate, rewrite, and bbox. Unlike the teacher's single-shot
// browser pipeline, this core has three independent entry points, so the
// first argument selects which one runs; everything after it keeps the
// teacher's no-flag-parsing, os.Args-driven style.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vectorforge/svgcore/config"
	"github.com/vectorforge/svgcore/dom"
	"github.com/vectorforge/svgcore/harness"
)

func main() {
	if len(os.Args) < 3 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	input := os.Args[2]
	opts := config.Options{}

	h := harness.New("", opts)
	ctx := context.Background()

	switch cmd {
	case "validate":
		runValidate(ctx, h, input, os.Args[3:])
	case "rewrite":
		runRewrite(ctx, h, input, os.Args[3:])
	case "bbox":
		runBBox(ctx, h, input)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: svgcore <command> <input> [args]")
	fmt.Println("Commands:")
	fmt.Println("  validate <input> [format]     format: text|json|yaml|xml (default text)")
	fmt.Println("  rewrite  <input> [output]      output: markup|tree|xml (default match input)")
	fmt.Println("  bbox     <input>               input must resolve to a single path/shape element")
}

func runValidate(ctx context.Context, h *harness.Harness, input string, args []string) {
	format := config.FormatText
	if len(args) > 0 {
		f, err := parseFormat(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		format = f
	}

	fmt.Println("=== Loading and validating ===")
	report, err := h.RunValidate(ctx, input, nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n=== Report ===")
	out, err := report.Format(format)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)

	if report.HasErrors() {
		os.Exit(1)
	}
}

func runRewrite(ctx context.Context, h *harness.Harness, input string, args []string) {
	output := harness.OutputMatchInput
	if len(args) > 0 {
		o, err := parseOutputKind(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		output = o
	}

	fmt.Println("=== Loading and rewriting ===")
	result, err := h.RunRewrite(ctx, input, nil, output)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n=== Result ===")
	switch v := result.(type) {
	case string:
		fmt.Println(v)
	case *dom.Node:
		fmt.Println(harness.Serialize(v))
	default:
		fmt.Printf("unexpected rewrite result type %T\n", v)
		os.Exit(1)
	}
}

func runBBox(ctx context.Context, h *harness.Harness, input string) {
	fmt.Println("=== Loading ===")
	node, _, _, err := h.Load(ctx, input, nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n=== Computing bounding box ===")
	bbox, err := h.ElementBBox(node)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("minX=%s minY=%s maxX=%s maxY=%s verified=%v\n",
		bbox.MinX.String(), bbox.MinY.String(), bbox.MaxX.String(), bbox.MaxY.String(), bbox.Verified)
}

func parseFormat(s string) (config.OutputFormat, error) {
	switch s {
	case "text":
		return config.FormatText, nil
	case "json":
		return config.FormatJSON, nil
	case "yaml":
		return config.FormatYAML, nil
	case "xml":
		return config.FormatXML, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want text|json|yaml|xml)", s)
	}
}

func parseOutputKind(s string) (harness.OutputKind, error) {
	switch s {
	case "markup":
		return harness.OutputMarkup, nil
	case "tree":
		return harness.OutputElementTree, nil
	case "xml":
		return harness.OutputXMLDocument, nil
	default:
		return 0, fmt.Errorf("unknown output kind %q (want markup|tree|xml)", s)
	}
}

package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/goexpr"
)

var jsonOut = flag.Bool("json", false, "print tokens, tree and result as JSON")

type output struct {
	Tokens []goexpr.Token `json:"tokens"`
	AST    *goexpr.Node   `json:"ast"`
	Result interface{}    `json:"result"`
}

type errOutput struct {
	Error string `json:"error"`
}

func printTree(w io.Writer, node *goexpr.Node, indent string) {
	if node == nil {
		return
	}
	switch node.Type {
	case goexpr.NodeLiteral:
		fmt.Fprintf(w, "%sNumber(%v)\n", indent, node.Value)
	case goexpr.NodeBinOp:
		fmt.Fprintf(w, "%sOp(%c)\n", indent, node.Op)
		printTree(w, node.Left, indent+"  ")
		printTree(w, node.Right, indent+"  ")
	}
}

func run(w io.Writer, text string) error {
	tokens, err := goexpr.Tokenize(text)
	if err != nil {
		return err
	}
	node, err := goexpr.Parse(text)
	if err != nil {
		return err
	}
	result, err := goexpr.Eval(node)
	if err != nil {
		return err
	}

	if *jsonOut {
		return json.NewEncoder(w).Encode(output{Tokens: tokens, AST: node, Result: result})
	}

	fmt.Fprintln(w, "[1] LEXICAL ANALYSIS: TOKENS")
	for _, tok := range tokens {
		fmt.Fprintf(w, "  %v\n", tok)
	}
	fmt.Fprintln(w, "\n[2] SYNTAX ANALYSIS: PARSE TREE (AST)")
	printTree(w, node, "  ")
	fmt.Fprintln(w, "\n[3] SEMANTIC EVALUATION: RESULT")
	fmt.Fprintf(w, "  Final Result: %v\n", result)
	return nil
}

func fail(err error) {
	if *jsonOut {
		json.NewEncoder(os.Stdout).Encode(errOutput{Error: err.Error()})
		os.Exit(1)
	}
	log.Fatal(err)
}

func repl() {
	exprs, err := goexpr.LoadExamples()
	if err == nil && len(exprs) > 0 {
		fmt.Println("Demo expressions:")
		for i, e := range exprs {
			fmt.Printf("  %d. %s\n", i+1, e)
		}
	}
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := run(os.Stdout, line); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
}

func main() {
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if flag.NArg() == 1 {
		if err := run(os.Stdout, flag.Arg(0)); err != nil {
			fail(err)
		}
		return
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		repl()
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := run(os.Stdout, line); err != nil {
			fail(err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

package rn2md_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-rn2md"
)

// Example converts one dated notebook entry.
func Example() {
	conv, err := rn2md.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), rn2md.Input{
		Text: "=Plans=\n+ write //more// tests\n+ read [docs \"\"http://example.com/go_doc\"\"]",
		Date: time.Date(2018, 3, 24, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Markdown)
	// Output:
	// # Sat Mar 24, 2018
	// ## Plans
	// 1. write _more_ tests
	// 2. read [docs](http://example.com/go_doc)
}

// ExampleConverter_Stream converts text from a reader line by line.
func ExampleConverter_Stream() {
	conv, err := rn2md.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	in := strings.NewReader("==Notes==\n``go_test`` is --slow-- fast\n")
	if err := conv.Stream(context.Background(), in, os.Stdout); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// ## Notes
	// `go_test` is ~slow~ fast
}

// ExampleConvertLines shows list numbering across indentation levels.
func ExampleConvertLines() {
	for _, line := range rn2md.ConvertLines([]string{"+ one", "  + nested", "+ two"}) {
		fmt.Println(line)
	}
	// Output:
	// 1. one
	//   1. nested
	// 2. two
}

// file: main.go
// version: 2.0.0
// guid: 3f9a1c2e-5b7d-4e8f-a0c1-d2e3f4a5b6c7

package main

import (
	"fmt"
	"os"

	"github.com/jdfalk/book-library/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "bat:", err)
		os.Exit(2)
	}
	os.Exit(exitCode)
}

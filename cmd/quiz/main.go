package main

import (
	"embed"
	"fmt"
	"os"
)

//go:embed configs
var configFS embed.FS

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

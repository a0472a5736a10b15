// Command chippie-disasm prints an assembly listing for a CHIP-8 ROM file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/valerio/go-chippie/chippie/disasm"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <ROM file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	rom, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, line := range disasm.ListROM(rom) {
		fmt.Println(line)
	}
}

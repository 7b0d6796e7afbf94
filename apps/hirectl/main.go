package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/hireloop/hireloop/apps/hirectl/cmd"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "hirectl crashed: %v\n", r)
			if os.Getenv("HIRELOOP_DEBUG") != "" {
				debug.PrintStack()
			}
			os.Exit(2)
		}
	}()

	cmd.Execute()
}

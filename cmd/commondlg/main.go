package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		if errors.Is(err, errCancelled) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "commondlg: %v\n", err)
		os.Exit(2)
	}
}

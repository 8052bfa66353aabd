// Command seatplan parses a pasted sign-up post and prints the bus seating
// plan without starting the server.
//
//	seatplan parse post.txt
//	pbpaste | seatplan parse --format json
//	seatplan hash-password
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"log"

	"github.com/thiagokokada/gitwrap/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		log.Fatalf("gitwrap: %v", err)
	}
}

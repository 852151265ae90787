package main

import (
	"log"

	"github.com/computerscienceiscool/wa-agent/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

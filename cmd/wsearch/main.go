package main

import (
	"github.com/molter/wordsearch/internal/cli"
)

func main() {
	cli.Execute()
}

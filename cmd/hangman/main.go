package main

import (
	"github.com/akarney/hangman/internal/cli"
)

func main() {
	cli.Execute()
}

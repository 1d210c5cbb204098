package main

import "github.com/tessro/skim/internal/cli"

func main() {
	cli.Execute()
}

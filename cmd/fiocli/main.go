package main

import "github.com/fiosdk/fiogo/internal/cli"

func main() {
	cli.Execute()
}

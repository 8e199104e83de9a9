package main

import "github.com/arloliu/eri/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/weiawesome/idkit/internal/cli"

func main() {
	cli.Execute()
}

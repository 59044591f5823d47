package main

import "github.com/kailas-cloud/docsearch/internal/cli"

func main() {
	cli.Execute()
}

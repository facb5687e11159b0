package main

import "github.com/gaurav-prasanna/docscrape/cmd"

func main() {
	cmd.Execute()
}

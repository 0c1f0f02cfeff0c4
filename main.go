package main

import "github.com/cmmoran/srcgen/cmd"

func main() {
	cmd.Execute()
}

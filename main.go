package main

import "github.com/san-e/flint/cmd"

func main() {
	cmd.Execute()
}

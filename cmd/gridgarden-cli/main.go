package main

import "github.com/gridgarden/landing/cmd/gridgarden-cli/cmd"

func main() {
	cmd.Execute()
}

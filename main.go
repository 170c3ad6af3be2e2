package main

import "github.com/bodaroute/bodaroute/cmd"

func main() {
	cmd.Execute()
}

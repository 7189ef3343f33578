package main

import "github.com/andyli/portfolio/cmd"

func main() {
	cmd.Execute()
}

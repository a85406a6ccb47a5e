package main

import "github.com/TuftsBCB/phylo/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}

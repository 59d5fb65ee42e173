package main

import (
	"github.com/jjtimmons/knotfold/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}

package main

import (
	"ddgscan/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}

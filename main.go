package main

import "github.com/herald-sh/herald/cmd"

func main() {
	cmd.Run()
}

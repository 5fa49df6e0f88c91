package main

import "github.com/sofic/sofic/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/rilchief/afrostats/cmd"

func main() {
	cmd.Execute()
}

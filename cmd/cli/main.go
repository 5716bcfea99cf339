package main

import "devspace/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}

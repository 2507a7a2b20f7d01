package main

import "planboard/cmd/planboard-cli/cmd"

func main() {
	cmd.Execute()
}

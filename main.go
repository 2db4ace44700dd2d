package main

import "github.com/cinescope/apiserver/cmd"

func main() {
	cmd.Execute()
}

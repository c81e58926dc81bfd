package main

import "github.com/avagut/authhub/cmd"

func main() {
	cmd.Execute()
}

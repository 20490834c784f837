package main

import "github.com/they4kman/gotris/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/jevi061/outfix/cmd"

func main() {
	cmd.Execute()
}

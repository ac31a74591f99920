package main

import "github.com/bizchat/bizchat/cmd"

func main() {
	cmd.Execute()
}

package main

import "restomart/cmd/commands"

func main() {
	commands.Execute()
}

package main

import "github.com/studypulse/studypulse-be/internal/commands"

func main() {
	commands.Execute()
}

package main

import "github.com/theirongolddev/budgetboard/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/theirongolddev/lumina/cmd"

func main() {
	cmd.Execute()
}

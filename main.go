package main

import "github.com/Johannes-Berggren/repodash/cmd"

func main() {
	cmd.Execute()
}

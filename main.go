package main

import "github/chapool/humtoken/cmd"

func main() {
	cmd.Execute()
}

package main

import "tzc/cmd"

func main() {
	cmd.Execute()
}

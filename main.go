package main

import "timebank/cmd"

func main() {
	cmd.Execute()
}

package main

import "wargame/cmd/wargame/cmd"

func main() {
	cmd.Execute()
}

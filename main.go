package main

import "hsv-inspector/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/mouse-blink/gowc/cmd"

func main() {
	cmd.Execute()
}

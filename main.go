package main

import "github.com/mouse-blink/namecheck/cmd"

func main() {
	cmd.Execute()
}

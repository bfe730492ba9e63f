package main

import "github.com/OpenTraceLab/OpenTraceSketch/cmd/ots/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/theirongolddev/payreal/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/fakeyudi/pomobar/cmd"

func main() {
	cmd.Execute()
}

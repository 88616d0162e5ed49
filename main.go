package main

import "github.com/styletools/style-logger/cmd"

func main() {
	cmd.Execute()
}

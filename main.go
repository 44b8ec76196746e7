package main

import "github.com/rlmedina/gotruss/cmd"

func main() {
	cmd.Execute()
}

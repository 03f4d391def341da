package main

import "github.com/f1board/f1board/cmd"

func main() {
	cmd.Execute()
}

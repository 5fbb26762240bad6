package main

import "github.com/hoppxi/lume/internal/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/gnames/fishfeat/cmd"

func main() {
	cmd.Execute()
}

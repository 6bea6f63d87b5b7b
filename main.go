package main

import "github.com/johanforsgren/gitcollection/cmd"

func main() {
	cmd.Execute()
}

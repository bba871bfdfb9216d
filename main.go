package main

import "github.com/inovacc/stele/cmd"

func main() {
	cmd.Execute()
}

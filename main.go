package main

import "github.com/haystacksec/kustodian/cmd"

func main() {
	cmd.Execute()
}

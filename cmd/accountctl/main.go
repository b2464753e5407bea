package main

import "github.com/dicehall/accounts/internal/cli"

func main() {
	cli.Execute()
}

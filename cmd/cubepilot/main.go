package main

import "github.com/cubepilot/cubepilot/internal/cli"

func main() {
	cli.Execute()
}

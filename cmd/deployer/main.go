package main

import "aurora_deployer/internal/cli"

func main() {
	cli.Execute()
}

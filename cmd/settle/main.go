package main

import "github.com/mmynk/settle/internal/cli"

func main() {
	cli.Execute()
}

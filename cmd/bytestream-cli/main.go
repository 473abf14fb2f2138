package main

import (
	"github.com/backbone81/byte-stream/cmd/bytestream-cli/cmd"
)

func main() {
	cmd.Execute()
}

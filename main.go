package main

import "github.com/mautops/medic-gin/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/Rorical/RoriSense/cmd"

func main() {
	cmd.Execute()
}

package main

import "jobtracker/cmd/client/cmd"

func main() {
	cmd.Execute()
}

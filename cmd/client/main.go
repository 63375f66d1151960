package main

import "tutorlink/cmd/client/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/medassist/medassist_backend/cmd"

func main() {
	cmd.Execute()
}

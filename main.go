package main

import "json-cooker/cmd"

func main() {
	cmd.Execute()
}

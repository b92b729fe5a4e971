package main

import "github.com/sjzsdu/yeshu/cmd"

func main() {
	cmd.Execute()
}

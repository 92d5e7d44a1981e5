package main

import "github.com/theirongolddev/tripcost/cmd"

func main() {
	cmd.Execute()
}

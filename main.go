package main

import "github.com/ArnoutVos/Firedrive/cmd"

func main() {
	cmd.Execute()
}

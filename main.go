package main

import "github.com/mmuldo/colorimetry/cmd"

func main() {
	cmd.Execute()
}

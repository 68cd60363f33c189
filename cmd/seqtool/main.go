package main

import "martianoff/galaseq/cmd/seqtool/commands"

func main() {
	commands.Execute()
}

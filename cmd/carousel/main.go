// Command carousel presents slide decks in the terminal.
package main

// Version is set at build time
var Version = "dev"

func main() {
	SetVersion(Version)
	Execute()
}

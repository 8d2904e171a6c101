// Command moviemagic is the CLI client for the moviemagic server.
package main

func main() {
	Execute()
}

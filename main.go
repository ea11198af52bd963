// Package main provides the entry point for the postfix CLI.
package main

import "yqhp/postfix/cmd"

func main() {
	cmd.Execute()
}

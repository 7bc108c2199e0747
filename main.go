/*
Copyright © 2026 Paulo Suderio
*/
package main

import "github.com/suderio/eskalero/cmd"

func main() {
	cmd.Execute()
}

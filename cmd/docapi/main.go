package main

import "github.com/medreport/docapi/cmd/docapi/cmd"

func main() {
	cmd.Execute()
}

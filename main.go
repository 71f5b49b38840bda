package main

import "github.com/ValentinKolb/respv/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/frizen94/ERPRO/cmd"

func main() {
	cmd.Execute()
}

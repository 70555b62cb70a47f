package main

import "github.com/ramses2099/storeapiv2/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/KeleWarg/design-theme-library-sub003/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/MOYARU/urt/cmd"

func main() {
	cmd.Execute()
}

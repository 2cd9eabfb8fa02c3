package main

import "github.com/damie/spotify-insights/cmd"

func main() {
	cmd.Execute()
}

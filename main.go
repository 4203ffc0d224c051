package main

import "github.com/Gauthampro7/vedic-astrology-app/cmd"

func main() {
	cmd.Execute()
}

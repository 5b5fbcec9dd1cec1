package main

import "travel-recommendation-backend/cmd"

func main() {
	cmd.Run()
}

package main

import "github.com/bridgegap/bridgegap/cmd/server"

func main() {
	server.NewServer().Run()
}

package main

import "github.com/hotelzify/concierge/cmd"

func main() {
	cmd.Execute()
}

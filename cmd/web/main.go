package main

import "github.com/hansols27/QWER-Back-end/internal/app"

func main() {
	app.Run()
}

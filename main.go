package main

import (
	"github.com/flatywop/predlojkabot/bot"
)

func main() {
	bot.Start()
}

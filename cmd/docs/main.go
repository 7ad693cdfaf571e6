// Regenerates README.md from the command catalog. Run after adding or
// renaming commands.
package main

import (
	"log"
	"time"

	"github.com/PineFruitDev/TSTemplateBot/internal/commands"
	"github.com/PineFruitDev/TSTemplateBot/internal/config"
	"github.com/PineFruitDev/TSTemplateBot/internal/docs"
)

func main() {
	reg, err := commands.New(&config.Config{}, time.Now())
	if err != nil {
		log.Fatal(err)
	}
	if err := docs.UpdateReadme(reg, "README.md.tmpl", "README.md"); err != nil {
		log.Fatal(err)
	}
}

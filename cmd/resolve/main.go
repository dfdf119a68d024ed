// Resolves an event title from the command line and prints the overlay text.
//
//	go run ./cmd/resolve -events assets/events "Dance Lesson"
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"eventoverlay/pkg/events"
	"eventoverlay/pkg/kb"
	"eventoverlay/pkg/ocr"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	def := os.Getenv("EVENTS_DIR")
	if def == "" {
		def = "assets/events"
	}
	dir := flag.String("events", def, "knowledge base directory")
	text := flag.String("text", "", "event title (or pass it as arguments)")
	clean := flag.Bool("clean", false, "apply OCR title cleanup before resolving")
	asJSON := flag.Bool("json", false, "print the result as JSON")
	n := flag.Int("suggest", 3, "suggestions to print when nothing matches")
	flag.Parse()

	raw := *text
	if raw == "" {
		raw = strings.Join(flag.Args(), " ")
	}
	if strings.TrimSpace(raw) == "" {
		log.Fatalf("usage: resolve [-events dir] [-clean] [-json] <title>")
	}
	if *clean {
		raw = ocr.CleanTitle(raw)
	}

	store := kb.NewStore(*dir)
	candidates, res := store.Lookup(raw)
	var sugg []string
	if res.Empty() {
		sugg = store.Suggest(raw, *n)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(struct {
			Raw         string             `json:"raw"`
			Title       string             `json:"title"`
			Candidates  []string           `json:"candidates"`
			Matches     events.MatchResult `json:"matches"`
			Suggestions []string           `json:"suggestions,omitempty"`
		}{raw, events.Title(raw, res), candidates, res, sugg})
		return
	}

	fmt.Println(events.Title(raw, res))
	fmt.Print(events.Render(raw, res))
	if len(sugg) > 0 {
		fmt.Printf("Did you mean: %s\n", strings.Join(sugg, ", "))
	}
	if res.Empty() {
		os.Exit(1)
	}
}

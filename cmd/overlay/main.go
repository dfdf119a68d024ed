// Terminal overlay: watches the screen for event choices and shows the
// matching options.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"eventoverlay/pkg/database"
	"eventoverlay/pkg/history"
	"eventoverlay/pkg/kb"
	"eventoverlay/pkg/ocr"
	"eventoverlay/pkg/screen"
	"eventoverlay/process/monitor"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	eventsDir := flag.String("events", envOr("EVENTS_DIR", "assets/events"), "knowledge base directory")
	icon := flag.String("icon", envOr("EVENT_ICON", "assets/icons/event_choice_1.png"), "event-choice icon template")
	confidence := flag.Float64("confidence", screen.DefaultConfidence, "minimum icon match confidence")
	titleRegion := flag.String("title-region", envOr("EVENT_TITLE_REGION", "243,201,365,45"), "event title region x,y,w,h")
	iconRegion := flag.String("icon-region", os.Getenv("EVENT_ICON_REGION"), "icon search region x,y,w,h (empty: full screen)")
	interval := flag.Duration("interval", 500*time.Millisecond, "poll interval")
	stability := flag.Duration("stability", time.Second, "time the icon must stay before reading")
	record := flag.Bool("record", false, "record detections in DB_DSN")
	logFile := flag.String("log", "overlay.log", "log file (the terminal is taken by the UI)")
	flag.Parse()

	if f, err := tea.LogToFile(*logFile, "overlay"); err == nil {
		defer f.Close()
	}

	title, err := screen.ParseRegion(*titleRegion)
	if err != nil {
		log.Fatalf("-title-region: %v", err)
	}
	iconRect, err := screen.ParseRegion(*iconRegion)
	if err != nil {
		log.Fatalf("-icon-region: %v", err)
	}
	capturer := screen.RobotgoCapturer{}
	det, err := screen.NewIconDetector(capturer, *icon, iconRect, *confidence)
	if err != nil {
		log.Fatal(err)
	}
	store := kb.NewStore(*eventsDir)
	reader := &screen.TitleReader{Capturer: capturer, Region: title, OCR: ocr.NewReader()}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = store.Watch(ctx) }()

	p := tea.NewProgram(newModel(func() int { return store.Reload().Total }))
	sinks := []monitor.Sink{monitor.SinkFunc(func(u monitor.Update) { p.Send(updateMsg(u)) })}
	if *record {
		gdb, err := database.OpenFromEnv()
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		database.Migrate(gdb)
		sinks = append(sinks, history.NewRecorder(gdb).MonitorSink(ctx))
	}
	m := monitor.New(det, reader, store, monitor.Config{Interval: *interval, Stability: *stability}, sinks...)
	go func() { _ = m.Run(ctx) }()

	if _, err := p.Run(); err != nil {
		log.Fatalf("overlay: %v", err)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

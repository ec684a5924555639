package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/museum"
	"github.com/oomph-ac/museum/console"
	"github.com/oomph-ac/museum/event"
	"github.com/oomph-ac/museum/movement"
	"github.com/oomph-ac/museum/scene"
	"github.com/oomph-ac/museum/settings"
	"github.com/oomph-ac/museum/utils"
	"github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "config.toml", "path of the settings file, created if missing")
	layoutPath = flag.String("layout", "", "path of a layout file, the default museum is used if empty")
	manual     = flag.Bool("manual", false, "only advance frames on wait commands")
)

// The following program walks a viewer through a museum, driven by commands read from stdin.
func main() {
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	s, err := readConfig(*configPath)
	if err != nil {
		log.Fatalf("unable to read settings: %v", err)
	}
	level, err := s.LogLevel()
	if err != nil {
		log.Fatalf("invalid log level: %v", err)
	}
	log.SetLevel(level)

	layout := scene.DefaultLayout()
	if *layoutPath != "" {
		if layout, err = scene.LoadLayout(*layoutPath); err != nil {
			log.Fatalf("unable to read layout: %v", err)
		}
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Fatalf("sentry.Init: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}
	if addr := os.Getenv("STATSVIEW_ADDR"); addr != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(addr))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	m, err := museum.New(s, layout, log)
	if err != nil {
		log.Fatalf("unable to create museum: %v", err)
	}
	defer m.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	sink := hud{log: log}
	m.SetSink(sink)
	if !*manual {
		go func() {
			if err := m.Run(ctx, sink); err != nil && !errors.Is(err, context.Canceled) {
				log.Errorf("frame loop stopped: %v", err)
			}
			cancel()
		}()
	}

	fmt.Println(console.Help)
	repl(ctx, m, log)
}

// repl reads commands from stdin until quit, EOF or ctx is done.
func repl(ctx context.Context, m *museum.Museum, log *logrus.Logger) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			cmds, err := console.Parse(line)
			if err != nil {
				fmt.Println(err)
				continue
			}
			for _, cmd := range cmds {
				out, err := m.Exec(cmd)
				if errors.Is(err, museum.ErrQuit) {
					return
				} else if err != nil {
					fmt.Println(err)
					break
				}
				if out = strings.TrimSpace(out); out != "" {
					fmt.Println(out)
				}
			}
			log.Debugf("pose after %q: %v", line, m.Core().Pose())
		}
	}
}

// hud prints what a heads-up display would show.
type hud struct {
	log *logrus.Logger
}

func (h hud) HandleFrame(res movement.Result) {
	if res.Blocked {
		h.log.Debugf("frame %d: blocked at %v", res.Frame, res.Pose)
	}
}

func (h hud) HandleEvent(ev event.Event) {
	switch ev := ev.(type) {
	case *event.FloorChange:
		fmt.Printf("You are now on: %s\n", ev.Label)
	case *event.DoorToggle:
		state := "closed"
		if ev.Open {
			state = "opened"
		}
		fmt.Printf("You %s the %s door\n", state, ev.Door)
	default:
		fmt.Printf("%s %s\n", ev.ID(), utils.OrderedMapToString(ev.Extra()))
	}
}

// readConfig reads the settings file at path, creating it with the default settings if it does not
// exist yet.
func readConfig(path string) (settings.Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := settings.SaveDefault(path); err != nil {
			return settings.Settings{}, err
		}
	}
	return settings.Load(path)
}

// Command touchdump streams decoded events from a CST816S touch
// panel to stdout.
package main

import (
	"flag"
	"fmt"
	"os"

	"touchpanel.dev/touch"
)

var (
	configPath = flag.String("config", "", "YAML wiring config")
	count      = flag.Int("n", 0, "exit after n events, 0 for forever")
)

func main() {
	flag.Parse()
	var cfg touch.Config
	if *configPath != "" {
		var err error
		cfg, err = touch.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "touchdump: %v\n", err)
			os.Exit(1)
		}
	}
	ch := make(chan touch.Event, 8)
	p, err := touch.Open(cfg, ch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "touchdump: %v\n", err)
		os.Exit(1)
	}
	defer p.Close()
	fmt.Printf("cst816s: chip %#02x proj %#02x fw %#02x\n", p.Info.ChipID, p.Info.ProjID, p.Info.FwVersion)
	n := 0
	for ev := range ch {
		fmt.Printf("%s %4d,%4d %s\n", ev.Time.Format("15:04:05.000"), ev.Point.X, ev.Point.Y, ev.Gesture)
		n++
		if *count > 0 && n >= *count {
			break
		}
	}
}

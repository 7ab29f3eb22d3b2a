// Command gone is a command-line front end for the 6502 machine: it loads a
// cartridge (or the built-in demo), optionally attaches a serial port, and
// either runs to halt or drops into an interactive debugger.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"gone6502/bus"
	"gone6502/cart"
	"gone6502/cpu"
	"gone6502/debug"
	"gone6502/internal/demo"
	"gone6502/internal/logging"
	"gone6502/ioport"
	"gone6502/rng"
	"gone6502/scheduler"
)

func main() {
	log := logging.New("gone")

	app := &cli.App{
		Name:  "gone",
		Usage: "a MOS 6502 / NROM machine emulator",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "run", Aliases: []string{"r"}, Usage: "execute until halted, then exit"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "print cycle/instruction/time totals on exit (with --run)"},
			&cli.BoolFlag{Name: "maxspeed", Aliases: []string{"m"}, Usage: "disable pacing; run as fast as the host allows"},
			&cli.StringFlag{Name: "start", Aliases: []string{"s"}, Usage: "override PC after reset, in hex"},
			&cli.StringFlag{Name: "port", Aliases: []string{"p"}, Usage: "serial device path for an attached UART"},
		},
		Action: run(log),
	}

	if err := app.Run(os.Args); err != nil {
		log.Println("error:", err)
		os.Exit(1)
	}
}

func run(log *logging.Logger) cli.ActionFunc {
	return func(c *cli.Context) error {
		b := bus.New()
		b.AttachRNG(rng.New(time.Now().UnixNano()))

		if path := c.String("port"); path != "" {
			f, err := os.OpenFile(path, os.O_RDWR, 0)
			if err != nil {
				return cli.Exit(fmt.Sprintf("cannot open serial port %s: %v", path, err), 1)
			}
			defer f.Close()
			b.AddDevice(ioport.Open(0x4000, f))
		}

		core := cpu.New(b)
		sched := scheduler.New(core)
		sched.MaxSpeed = c.Bool("maxspeed")

		if path := c.Args().First(); path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("cannot read %s: %v", path, err), 1)
			}
			cartImg, err := cart.New(data)
			if err != nil {
				return cli.Exit(fmt.Sprintf("bad cartridge %s: %v", path, err), 1)
			}
			b.AttachCart(cartImg)
			sched.Reset()
		} else {
			sched.Load(demo.Snake, demo.LoadAddr)
			sched.Load([]byte{byte(demo.LoadAddr), byte(demo.LoadAddr >> 8)}, 0xFFFC)
			sched.Reset()
		}

		if startFlag := c.String("start"); startFlag != "" {
			addr, err := parseHex(startFlag)
			if err != nil {
				return cli.Exit(fmt.Sprintf("bad --start value %q: %v", startFlag, err), 1)
			}
			core.PC = addr
		}

		if !c.Bool("run") {
			return debug.Run(debug.New(sched))
		}

		start := time.Now()
		sched.Run()
		for !sched.IsHalted() {
			time.Sleep(time.Millisecond)
		}

		if c.Bool("verbose") {
			log.Printf("cycles=%d instructions=%d elapsed=%s", core.Cycles, core.Instructions, time.Since(start))
		}
		return nil
	}
}

func parseHex(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

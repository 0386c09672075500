// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/modalflag"
	"github.com/jetsetilly/gopher6502/monitor"
	"github.com/jetsetilly/gopher6502/performance"
	"github.com/jetsetilly/gopher6502/performance/limiter"
	"github.com/jetsetilly/gopher6502/snapshot"
	"github.com/jetsetilly/gopher6502/statsview"
	xterm "golang.org/x/term"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// stop handling the interrupt signal in the main thread. used by modes
	// that handle ctrl-c themselves.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// mainSync is used to synchronise the launch goroutine with the main thread.
type mainSync struct {
	state chan stateRequest
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// ctrl-c default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DISASM", "BLOCKS", "MONITOR", "COMPARE", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DISASM":
		err = disasm(md)

	case "BLOCKS":
		err = blocks(md)

	case "MONITOR":
		err = monitorMode(md, sync)

	case "COMPARE":
		err = compare(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to all modes that load a program
type programFlags struct {
	format *string
	prefs  *string
	log    *bool
}

func addProgramFlags(md *modalflag.Modes) programFlags {
	return programFlags{
		format: md.AddString("format", "AUTO", "program format: AUTO, RAW, INES"),
		prefs:  md.AddString("prefs", "", "preferences to apply (key::value; ...)"),
		log:    md.AddBool("log", false, "echo log to stdout"),
	}
}

// program returns a machine with the program named by the single remaining
// argument attached
func (f programFlags) program(md *modalflag.Modes) (*machine, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("program required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	if *f.log {
		// multi-line log entries are easier to read with color
		var w io.Writer = md.Output
		if md.Output == os.Stdout && xterm.IsTerminal(int(os.Stdout.Fd())) {
			w = logger.NewColorizer(md.Output)
		}
		logger.SetEcho(w, false)
	}

	return newMachine(*f.prefs, md.GetArg(0), *f.format)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	pf := addProgramFlags(md)
	interpreter := md.AddBool("interpreter", false, "use the interpreter only")
	frames := md.AddInt("frames", 60, "number of frames to run")
	fps := md.AddInt("fps", 0, "limit frames per second (0 is unlimited)")
	nmi := md.AddBool("nmi", true, "request an NMI at the start of every frame")
	stats := md.AddBool("statsview", false, "run stats server")
	save := md.AddString("save", "", "save CPU state to file when finished")
	restore := md.AddString("restore", "", "restore CPU state from file before running")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := pf.program(md)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		srv := statsview.Launch(md.Output, "")
		defer srv.Stop()
	}

	if *restore != "" {
		s, err := snapshot.Load(*restore)
		if err != nil {
			return err
		}
		err = m.mc.RestoreState(s)
		if err != nil {
			return err
		}
	}

	lim := limiter.NewLimiter(*fps)
	defer lim.Stop()

	cycles := 0
	for i := 0; i < *frames && !m.mc.Halted; i++ {
		lim.Wait()
		cycles += m.frame(*interpreter, *nmi)
	}

	fmt.Fprintf(md.Output, "%s\n", m.mc)
	fmt.Fprintf(md.Output, "%d cycles\n", cycles)
	if m.mc.Halted {
		io.WriteString(md.Output, "halted\n")
	}
	if !*interpreter {
		fmt.Fprintf(md.Output, "%s\n", m.rc.Stats())
	}
	io.WriteString(md.Output, m.bus.String())

	if *save != "" {
		return snapshot.Save(*save, m.mc.Snapshot())
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	pf := addProgramFlags(md)
	from := md.AddAddress("from", 0x8000, "first address to disassemble")
	to := md.AddAddress("to", 0xffff, "last address to disassemble")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := pf.program(md)
	if err != nil {
		return err
	}

	return disassembly.Write(md.Output, m.mc.Mem, *from, *to)
}

func blocks(md *modalflag.Modes) error {
	md.NewMode()

	pf := addProgramFlags(md)
	entry := md.AddString("entry", "", "entry address (default is the reset vector)")
	frames := md.AddInt("frames", 0, "run frames with the recompiler before listing blocks")
	viz := md.AddString("memviz", "", "write graphviz description of the blocks to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := pf.program(md)
	if err != nil {
		return err
	}

	if *frames > 0 {
		for i := 0; i < *frames && !m.mc.Halted; i++ {
			m.frame(false, false)
		}
	} else {
		a := m.mc.PC
		if *entry != "" {
			a, err = parseAddress(*entry)
			if err != nil {
				return err
			}
		}
		m.rc.Translate(a)
	}

	dasm := func(address uint16) string {
		return disassembly.Disassemble(m.mc.Mem, address).String()
	}
	for _, blk := range m.rc.Blocks() {
		blk.Dump(md.Output, m.rc.Metadata, dasm)
		io.WriteString(md.Output, "\n")
	}
	fmt.Fprintf(md.Output, "%s\n", m.rc.Stats())

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		memviz.Map(f, m.rc.Blocks())
		return f.Close()
	}

	return nil
}

func monitorMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	pf := addProgramFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := pf.program(md)
	if err != nil {
		return err
	}

	term, err := monitor.OpenTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer term.Close()

	// ctrl-c is read as a key by the monitor
	sync.state <- stateRequest{req: reqNoIntSig}

	mon := monitor.NewMonitor(m.mc, m.rc, term)
	mon.CyclesPerFrame = m.cyclesPerFrame()
	mon.Width = term.Width()

	return mon.Run(term)
}

func compare(md *modalflag.Modes) error {
	md.NewMode()

	pf := addProgramFlags(md)
	frames := md.AddInt("frames", 60, "number of frames to compare")
	nmi := md.AddBool("nmi", true, "request an NMI at the start of every frame")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ref, err := pf.program(md)
	if err != nil {
		return err
	}
	dut, err := newMachine(*pf.prefs, md.GetArg(0), *pf.format)
	if err != nil {
		return err
	}

	f, d := compareFrames(ref, dut, *frames, *nmi)
	if d != "" {
		return fmt.Errorf("divergence in frame %d: %s", f, d)
	}

	fmt.Fprintf(md.Output, "no divergence in %d frames\n", f)
	fmt.Fprintf(md.Output, "%s\n", dut.rc.Stats())

	return nil
}

// compareFrames runs the ref machine with the interpreter and the dut machine
// with the recompiler. returns the number of frames compared and a
// description of the first divergence
func compareFrames(ref *machine, dut *machine, frames int, nmi bool) (int, string) {
	for i := 0; i < frames; i++ {
		if ref.mc.Halted && dut.mc.Halted {
			return i, ""
		}
		ref.frame(true, nmi)
		dut.frame(false, nmi)
		if d := diverges(ref.mc, dut.mc); d != "" {
			return i, d
		}
	}
	return frames, ""
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	pf := addProgramFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "duration of each measurement")
	profile := md.AddString("profile", "NONE", "create profiles: CPU, MEM, TRACE, ALL, NONE")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	m, err := pf.program(md)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		srv := statsview.Launch(md.Output, "")
		defer srv.Stop()
	}

	// the first machine has already been created
	create := func() (*cpu.CPU, error) {
		if m != nil {
			mc := m.mc
			m = nil
			return mc, nil
		}
		n, err := newMachine(*pf.prefs, md.GetArg(0), *pf.format)
		if err != nil {
			return nil, err
		}
		return n.mc, nil
	}

	return performance.Check(md.Output, prf, create, m.cyclesPerFrame(), *duration)
}

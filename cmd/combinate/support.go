package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/klauspost/compress/zstd"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/Brazilian-Institute-of-Robotics/base-numeric/combinatorics"
	"github.com/Brazilian-Institute-of-Robotics/base-numeric/limited"
	"github.com/Brazilian-Institute-of-Robotics/base-numeric/multiset"
)

var cfg = new(config)

type config struct {
	specPath  string
	atoms     string
	size      int
	mode      string
	countOnly bool
	outPath   string
	quiet     bool
}

// drawSpec is the YAML layout of a -spec file.
type drawSpec struct {
	Atoms map[string]int `yaml:"atoms"`
	Size  *int           `yaml:"size"`
	Mode  string         `yaml:"mode"`
}

func bindVar() {
	log.SetFlags(0)
	log.SetPrefix("combinate: ")

	flag.StringVar(&cfg.specPath, "spec", "", "YAML draw spec: atoms map, size, mode")
	flag.StringVar(&cfg.atoms, "atoms", "", `inline availability, e.g. "A:2,B:1,C:1" (overrides the spec file)`)
	flag.IntVar(&cfg.size, "size", -1, "draw size (overrides the spec file)")
	flag.StringVar(&cfg.mode, "mode", "", "EXACT, MIN or MAX (overrides the spec file)")
	flag.BoolVar(&cfg.countOnly, "count", false, "print the number of combinations and exit")
	flag.StringVar(&cfg.outPath, "o", "", "write combinations to a file instead of stdout; a .zst suffix compresses")
	flag.BoolVar(&cfg.quiet, "quiet", false, "suppress the progress bar and the summary")

	flag.Parse()
}

// load merges the spec file with the flag overrides into a runnable triple.
func load() (multiset.Multiset[string], int, combinatorics.Mode) {
	spec := new(drawSpec)
	if cfg.specPath != "" {
		raw, err := os.ReadFile(cfg.specPath)
		if err != nil {
			log.Fatal(err)
		}
		if err = yaml.Unmarshal(raw, spec); err != nil {
			log.Fatal(err)
		}
	}
	if cfg.atoms != "" {
		spec.Atoms = parseAtoms(cfg.atoms)
	}

	size := cfg.size
	if size < 0 && spec.Size != nil {
		size = *spec.Size
	}
	if size < 0 {
		log.Fatal("draw size required: pass -size or set size: in the spec file")
	}

	name := cfg.mode
	if name == "" {
		name = spec.Mode
	}
	if name == "" {
		name = "EXACT"
	}
	mode, err := combinatorics.ParseMode(name)
	if err != nil {
		log.Fatal(err)
	}

	return multiset.Multiset[string](spec.Atoms), size, mode
}

// parseAtoms reads the inline "name:count,name:count" form.
func parseAtoms(s string) map[string]int {
	avail := make(map[string]int)
	for _, field := range strings.Split(s, ",") {
		name, count, ok := strings.Cut(strings.TrimSpace(field), ":")
		if !ok {
			log.Fatalf("bad -atoms entry %q: want name:count", field)
		}
		n, err := strconv.Atoi(count)
		if err != nil {
			log.Fatalf("bad -atoms count in %q: %v", field, err)
		}
		avail[name] += n
	}
	return avail
}

func execute() {
	avail, size, mode := load()
	lc, err := limited.New(avail, size, mode)
	if err != nil {
		log.Fatal(err)
	}
	total := lc.Count()
	p := message.NewPrinter(language.English)

	if cfg.countOnly {
		if total.IsInt64() {
			p.Printf("%d\n", total.Int64())
		} else {
			fmt.Println(total.String())
		}
		return
	}

	out, done := openOutput()
	bar := pb.StartNew(barTotal(total))
	if cfg.outPath == "" || cfg.quiet {
		bar.SetWriter(io.Discard)
	} else {
		bar.SetWriter(os.Stderr)
	}

	emitted := 0
	for {
		if _, err = fmt.Fprintln(out, strings.Join(lc.Current(), " ")); err != nil {
			log.Fatal(err)
		}
		emitted++
		bar.Increment()
		if !lc.Next() {
			break
		}
	}
	used := time.Since(bar.StartTime())
	bar.Finish()
	done()

	if !cfg.quiet {
		fmt.Fprint(os.Stderr, summary(p, avail, lc, emitted, used))
	}
}

// openOutput picks the enumeration sink: buffered stdout, a plain file, or
// a zstd-compressed file for .zst paths. The returned func flushes and
// closes whatever was opened.
func openOutput() (io.Writer, func()) {
	if cfg.outPath == "" {
		w := bufio.NewWriter(os.Stdout)
		return w, func() {
			if err := w.Flush(); err != nil {
				log.Fatal(err)
			}
		}
	}
	f, err := os.Create(cfg.outPath)
	if err != nil {
		log.Fatal(err)
	}
	if strings.HasSuffix(cfg.outPath, ".zst") {
		zw, zerr := zstd.NewWriter(f)
		if zerr != nil {
			log.Fatal(zerr)
		}
		return zw, func() {
			if cerr := zw.Close(); cerr != nil {
				log.Fatal(cerr)
			}
			if cerr := f.Close(); cerr != nil {
				log.Fatal(cerr)
			}
		}
	}
	w := bufio.NewWriter(f)
	return w, func() {
		if ferr := w.Flush(); ferr != nil {
			log.Fatal(ferr)
		}
		if cerr := f.Close(); cerr != nil {
			log.Fatal(cerr)
		}
	}
}

// barTotal sizes the progress bar; totals beyond int32 run the bar open-ended.
func barTotal(total *big.Int) int {
	if total.IsInt64() && total.Int64() <= math.MaxInt32 {
		return int(total.Int64())
	}
	return 0
}

// summary renders the run report as a small aligned box.
func summary(p *message.Printer, avail multiset.Multiset[string], lc *limited.Combination[string], emitted int, used time.Duration) string {
	rows := [][2]string{
		{"Atoms", avail.String()},
		{"Total atoms", p.Sprintf("%d", limited.TotalAtoms(avail))},
		{"Mode", lc.Mode().String()},
		{"Draw size", p.Sprintf("%d", lc.Size())},
		{"Combinations", p.Sprintf("%d", emitted)},
		{"Elapsed", used.Truncate(time.Millisecond).String()},
	}

	keyW, valW := 0, 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r[0]); w > keyW {
			keyW = w
		}
		if w := runewidth.StringWidth(r[1]); w > valW {
			valW = w
		}
	}
	divider := "+" + strings.Repeat("-", keyW+2) + "+" + strings.Repeat("-", valW+2) + "+\n"

	var b strings.Builder
	b.WriteString(divider)
	for _, r := range rows {
		b.WriteString("| " + r[0] + strings.Repeat(" ", keyW-runewidth.StringWidth(r[0])))
		b.WriteString(" | " + r[1] + strings.Repeat(" ", valW-runewidth.StringWidth(r[1])) + " |\n")
	}
	b.WriteString(divider)
	return b.String()
}

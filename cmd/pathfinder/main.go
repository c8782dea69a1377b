// Command pathfinder loads a maze file, runs one or all search algorithms on
// it and reports what each one found. Optionally it draws the result to PNG
// and writes a frame-by-frame replay of the expansions.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathfinder/maze"
	"github.com/katalvlaran/pathfinder/mazefile"
	"github.com/katalvlaran/pathfinder/render"
	"github.com/katalvlaran/pathfinder/search"
)

var log = logrus.New()

// errEndpoint is returned when -start or -goal cannot be used.
var errEndpoint = errors.New("pathfinder: bad endpoint")

// parseNode reads "row,col".
func parseNode(s string) (maze.Node, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return maze.Node{}, fmt.Errorf("%w: %q is not \"row,col\"", errEndpoint, s)
	}
	r, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	c, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return maze.Node{}, fmt.Errorf("%w: %q is not \"row,col\"", errEndpoint, s)
	}
	return maze.At(r, c), nil
}

// checkEndpoint rejects positions outside m or on a wall.
func checkEndpoint(m *maze.Maze, what string, n maze.Node) error {
	if !m.IsValid(n) {
		return fmt.Errorf("%w: %s %v outside %dx%d maze", errEndpoint, what, n, m.Height(), m.Width())
	}
	if m.IsWall(n) {
		return fmt.Errorf("%w: %s %v is a wall", errEndpoint, what, n)
	}
	return nil
}

// lastOpen returns the open cell closest to the bottom-right corner in
// row-major order, or the corner itself when every cell is a wall.
func lastOpen(m *maze.Maze) maze.Node {
	for r := m.Height() - 1; r >= 0; r-- {
		for c := m.Width() - 1; c >= 0; c-- {
			if n := maze.At(r, c); m.IsOpen(n) {
				return n
			}
		}
	}
	return maze.At(m.Height()-1, m.Width()-1)
}

// outputName tags path with the algorithm alias when several results share it.
func outputName(path, alias string, tagged bool) string {
	if !tagged || path == "" {
		return path
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + alias + ext
}

// resolveMaze joins bare file names with the maze directory.
func resolveMaze(dir, name string) string {
	if filepath.IsAbs(name) || strings.ContainsRune(name, os.PathSeparator) {
		return name
	}
	return filepath.Join(dir, name)
}

// writeReplay saves one PNG per frame into dir.
func writeReplay(dir string, res *search.Result, every int, opts ...render.Option) (int, error) {
	frames, err := render.Frames(res, every, opts...)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}
	for i, img := range frames {
		name := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", i))
		if err := render.SavePNG(name, img); err != nil {
			return i, err
		}
	}
	return len(frames), nil
}

type config struct {
	dir, mazeName, algorithm string
	start, goal              string
	seed                     int64
	seeded                   bool // -seed was given
	shuffle, all, verbose    bool
	maxExpansions            int
	png, replayDir           string
	replayEvery              int
}

// wasSet reports whether the flag name was given on the command line.
func wasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// searchOptions translates cfg into options for one run of alg.
func searchOptions(cfg config, alg search.Algorithm) []search.Option {
	opts := []search.Option{
		search.WithShuffle(cfg.shuffle),
		search.WithMaxExpansions(cfg.maxExpansions),
	}
	if cfg.seeded {
		opts = append(opts, search.WithSeed(cfg.seed))
	}
	if cfg.verbose {
		opts = append(opts, search.WithOnExpand(func(n maze.Node, order int) {
			log.WithFields(logrus.Fields{"algorithm": alg.Alias(), "node": n.String(), "order": order}).Debug("expand")
		}))
	}
	return opts
}

func report(cfg config, start, goal maze.Node, m *maze.Maze, alg search.Algorithm) error {
	res, err := search.Run(alg, start, goal, m, searchOptions(cfg, alg)...)
	if err != nil {
		return fmt.Errorf("%s: %w", alg, err)
	}

	fields := logrus.Fields{
		"algorithm": alg.String(),
		"found":     res.Found,
		"cost":      res.PathCost,
		"length":    res.PathLength(),
		"expanded":  res.Expansions(),
	}
	if res.Found {
		log.WithFields(fields).Info("path found")
	} else {
		log.WithFields(fields).Warn("no path")
	}
	if cfg.verbose {
		if text, err := render.ASCII(res); err == nil {
			log.Debug("\n" + text)
		}
	}

	if name := outputName(cfg.png, alg.Alias(), cfg.all); name != "" {
		img, err := render.Image(res)
		if err != nil {
			return err
		}
		if err := render.SavePNG(name, img); err != nil {
			return err
		}
		log.WithField("file", name).Info("image written")
	}
	if dir := outputName(cfg.replayDir, alg.Alias(), cfg.all); dir != "" {
		n, err := writeReplay(dir, res, cfg.replayEvery)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"dir": dir, "frames": n}).Info("replay written")
	}
	return nil
}

func run() int {
	var cfg config
	var list, initOnly bool
	flag.StringVar(&cfg.dir, "dir", "mazes", "Directory holding maze files.")
	flag.StringVar(&cfg.mazeName, "maze", mazefile.TemplateName,
		"Maze file to load. Bare names are looked up in -dir.")
	flag.StringVar(&cfg.algorithm, "algorithm", "astar",
		"Search algorithm: dfs, bfs, ucs, astar or a full name.")
	flag.StringVar(&cfg.start, "start", "0,0", "Start cell as row,col.")
	flag.StringVar(&cfg.goal, "goal", "",
		"Goal cell as row,col. Defaults to the last open cell.")
	flag.Int64Var(&cfg.seed, "seed", 0,
		"Seed for the neighbor shuffle. When given, runs are repeatable.")
	flag.BoolVar(&cfg.shuffle, "shuffle", true, "Shuffle neighbor order.")
	flag.IntVar(&cfg.maxExpansions, "max-expansions", 0,
		"Abort a search after this many expansions. 0 means no limit.")
	flag.StringVar(&cfg.png, "png", "", "Write the final image to this .png file.")
	flag.StringVar(&cfg.replayDir, "replay-dir", "",
		"Write replay frames into this directory.")
	flag.IntVar(&cfg.replayEvery, "replay-every", 1, "Expansions between replay frames.")
	flag.BoolVar(&cfg.all, "all", false, "Run every algorithm.")
	flag.BoolVar(&list, "list", false, "List the mazes in -dir and exit.")
	flag.BoolVar(&initOnly, "init", false,
		"Create -dir with a template maze if it does not exist and exit.")
	flag.BoolVar(&cfg.verbose, "verbose", false, "Log every expansion and an ASCII view.")
	flag.Parse()
	cfg.seeded = wasSet(flag.CommandLine, "seed")

	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := mazefile.InitDir(cfg.dir); err != nil {
		log.WithError(err).Error("preparing maze directory")
		return 1
	}
	if initOnly {
		log.WithField("dir", cfg.dir).Info("maze directory ready")
		return 0
	}
	if list {
		names, err := mazefile.List(cfg.dir)
		if err != nil {
			log.WithError(err).Error("listing mazes")
			return 1
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return 0
	}

	path := resolveMaze(cfg.dir, cfg.mazeName)
	m, err := mazefile.Load(path)
	if err != nil {
		log.WithError(err).Error("loading maze")
		return 1
	}
	log.WithFields(logrus.Fields{"file": path, "rows": m.Height(), "cols": m.Width()}).Debug("maze loaded")

	start, err := parseNode(cfg.start)
	if err != nil {
		log.WithError(err).Error("parsing -start")
		return 1
	}
	goal := lastOpen(m)
	if cfg.goal != "" {
		if goal, err = parseNode(cfg.goal); err != nil {
			log.WithError(err).Error("parsing -goal")
			return 1
		}
	}
	if err := checkEndpoint(m, "start", start); err != nil {
		log.WithError(err).Error("invalid start")
		return 1
	}
	if err := checkEndpoint(m, "goal", goal); err != nil {
		log.WithError(err).Error("invalid goal")
		return 1
	}

	if !m.Connected(start, goal) {
		log.WithFields(logrus.Fields{"start": start.String(), "goal": goal.String()}).
			Debug("start and goal lie in different regions; no search will find a path")
	}

	algs := search.Algorithms()
	if !cfg.all {
		alg, err := search.Parse(cfg.algorithm)
		if err != nil {
			log.WithError(err).Errorf("known algorithms: %s", strings.Join(search.Names(), ", "))
			return 1
		}
		algs = []search.Algorithm{alg}
	}

	status := 0
	for _, alg := range algs {
		if err := report(cfg, start, goal, m, alg); err != nil {
			log.WithError(err).Error("search failed")
			status = 1
		}
	}
	return status
}

func main() {
	os.Exit(run())
}

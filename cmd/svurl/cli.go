package main

import (
	"strconv"
	"strings"

	"github.com/lojhan/svurl/internal/link"
)

type CLI struct {
	Config  string   `short:"c" help:"Configuration file path (default $SVURL_CONFIG, then .svurl.yaml)"`
	Verbose bool     `short:"v" help:"Enable verbose logging"`
	Set     []string `help:"Override or add a set as NAME=PATH (repeatable)" placeholder:"NAME=PATH" sep:"none"`

	Add struct {
		URL     string `arg:"" help:"URL to save"`
		Into    string `help:"Target set (default saved, or origins with --origin)"`
		Check   string `help:"Also look for duplicates in this set" default:"used"`
		NoCheck bool   `help:"Skip the cross-set duplicate check"`
		Origin  bool   `help:"Save only the URL's origin"`
	} `cmd:"" help:"Save a URL unless it is already known"`

	Pop struct {
		From string `help:"Source set" default:"saved"`
		To   string `help:"Destination set" default:"used"`
	} `cmd:"" help:"Move the most recently saved URL to another set and open it"`

	Random struct {
		From string `help:"Source set" default:"saved"`
		To   string `help:"Destination set" default:"used"`
		Keep bool   `help:"Open without moving"`
	} `cmd:"" help:"Pick a random saved URL, move it and open it"`

	Index struct {
		Index int    `arg:"" help:"Zero-based position; 0 is reserved"`
		From  string `help:"Source set" default:"saved"`
		To    string `help:"Destination set" default:"used"`
		Keep  bool   `help:"Open without moving"`
	} `cmd:"" help:"Pick the URL at a position, move it and open it"`

	Merge struct {
		LeftA  string `arg:"" help:"Set that receives (LEFT-A ∪ RIGHT-A) minus (LEFT-B ∪ RIGHT-B)"`
		RightA string `arg:""`
		LeftB  string `arg:"" help:"Set that receives LEFT-B ∪ RIGHT-B"`
		RightB string `arg:""`
	} `cmd:"" help:"Reconcile sets with union and difference"`

	Undo struct {
		From string `help:"First set to restore" default:"saved"`
		To   string `help:"Second set to restore" default:"used"`
	} `cmd:"" help:"Restore two sets from their backups"`

	Sets struct{} `cmd:"" help:"List configured sets"`

	Show struct {
		Name string `arg:"" help:"Set name"`
	} `cmd:"" help:"List a set's URLs with their positions"`

	Parse struct {
		URL string `arg:""`
	} `cmd:"" help:"Show how a URL is stored"`

	Save struct{} `cmd:"" help:"Rewrite every set file"`
}

// request maps the selected kong command to a registry command and its arguments.
func (c *CLI) request(selected string) (string, []string) {
	name := strings.Fields(selected)[0]

	switch name {
	case "add":
		mode := link.ModeFull
		into, check := c.Add.Into, c.Add.Check
		if c.Add.Origin {
			mode = link.ModeOrigin
			check = ""
			if into == "" {
				into = "origins"
			}
		}
		if into == "" {
			into = "saved"
		}
		if c.Add.NoCheck {
			check = ""
		}
		return "ADD", []string{into, check, c.Add.URL, string(mode)}
	case "pop":
		return "POP", []string{c.Pop.From, c.Pop.To}
	case "random":
		return "RANDOM", []string{c.Random.From, c.Random.To, strconv.FormatBool(!c.Random.Keep)}
	case "index":
		return "INDEX", []string{c.Index.From, c.Index.To, strconv.Itoa(c.Index.Index), strconv.FormatBool(!c.Index.Keep)}
	case "merge":
		return "MERGE", []string{c.Merge.LeftA, c.Merge.RightA, c.Merge.LeftB, c.Merge.RightB}
	case "undo":
		return "UNDO", []string{c.Undo.From, c.Undo.To}
	case "show":
		return "SHOW", []string{c.Show.Name}
	case "parse":
		return "PARSE", []string{c.Parse.URL}
	default:
		return strings.ToUpper(name), nil
	}
}

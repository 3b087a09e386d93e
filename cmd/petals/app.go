package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"daisy/internal/client"
	"daisy/internal/handlers"
	"daisy/internal/models"
)

const defaultAPI = "http://localhost:8080"

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "petals",
		Usage:  "write and read petal journal entries",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Usage:   "base URL of the petal API",
				Value:   defaultAPI,
				EnvVars: []string{"DAISY_API_URL"},
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print raw JSON instead of text",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "list every petal, oldest first",
				Action: listPetals,
			},
			{
				Name:      "show",
				Usage:     "show one petal",
				ArgsUsage: "ID",
				Action:    showPetal,
			},
			{
				Name:  "add",
				Usage: "write a new petal for the current moment",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Required: true, Usage: "what happened"},
					&cli.StringFlag{Name: "feel", Required: true, Usage: "how you feel right now"},
					&cli.StringFlag{Name: "want", Required: true, Usage: "how you would like to feel"},
					&cli.TimestampFlag{Name: "at", Layout: time.RFC3339, Usage: "moment to file the petal under (default: now)"},
				},
				Action: addPetal,
			},
			{
				Name:      "edit",
				Usage:     "replace the text of a petal",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Required: true},
				},
				Action: editPetal,
			},
			{
				Name:      "rm",
				Usage:     "delete a petal",
				ArgsUsage: "ID",
				Action:    removePetal,
			},
			{
				Name:   "moment",
				Usage:  "print the server's current day and time of day",
				Action: printMoment,
			},
		},
	}
}

func apiClient(c *cli.Context) *client.Client {
	return client.New(c.String("api"), nil)
}

func idArg(c *cli.Context) (string, error) {
	id := strings.TrimSpace(c.Args().First())
	if id == "" {
		return "", errors.New("missing petal ID")
	}
	return id, nil
}

func listPetals(c *cli.Context) error {
	petals, err := apiClient(c).List(c.Context)
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return writeJSON(c.App.Writer, petals)
	}
	if len(petals) == 0 {
		fmt.Fprintln(c.App.Writer, "no petals yet")
		return nil
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tFEEL\tWANT\tTEXT")
	for _, p := range petals {
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\t%s\n",
			p.ID, p.DayOfWeek, p.TimeOfDay, p.CurrentEmotion, p.DesiredEmotion, preview(p.Text, 40))
	}
	return tw.Flush()
}

func showPetal(c *cli.Context) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	p, err := apiClient(c).Get(c.Context, id)
	if err != nil {
		return describe(err, id)
	}
	return printPetal(c, p)
}

func addPetal(c *cli.Context) error {
	at := time.Now()
	if ts := c.Timestamp("at"); ts != nil {
		at = *ts
	}
	moment := models.MomentOf(at)

	p, err := apiClient(c).Create(c.Context, client.CreatePetalInput{
		DayOfWeek:      moment.DayOfWeek,
		TimeOfDay:      moment.TimeOfDay,
		CurrentEmotion: c.String("feel"),
		DesiredEmotion: c.String("want"),
		Text:           c.String("text"),
	})
	if err != nil {
		return err
	}
	return printPetal(c, p)
}

func editPetal(c *cli.Context) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	p, err := apiClient(c).UpdateText(c.Context, id, c.String("text"))
	if err != nil {
		return describe(err, id)
	}
	return printPetal(c, p)
}

func removePetal(c *cli.Context) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	res, err := apiClient(c).Delete(c.Context, id)
	if err != nil {
		return describe(err, id)
	}
	if c.Bool("json") {
		return writeJSON(c.App.Writer, res)
	}
	fmt.Fprintf(c.App.Writer, "deleted %s\n", res.DeletedPetal.ID)
	return nil
}

func printMoment(c *cli.Context) error {
	m, err := apiClient(c).Moment(c.Context)
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return writeJSON(c.App.Writer, m)
	}
	fmt.Fprintf(c.App.Writer, "%s %s\n", m.DayOfWeek, m.TimeOfDay)
	return nil
}

func printPetal(c *cli.Context, p handlers.PetalDTO) error {
	if c.Bool("json") {
		return writeJSON(c.App.Writer, p)
	}
	w := c.App.Writer
	fmt.Fprintf(w, "id:      %s\n", p.ID)
	fmt.Fprintf(w, "when:    %s %s\n", p.DayOfWeek, p.TimeOfDay)
	fmt.Fprintf(w, "feel:    %s\n", p.CurrentEmotion)
	fmt.Fprintf(w, "want:    %s\n", p.DesiredEmotion)
	fmt.Fprintf(w, "created: %s\n", p.CreatedAt)
	fmt.Fprintf(w, "\n%s\n", p.Text)
	return nil
}

func describe(err error, id string) error {
	if errors.Is(err, client.ErrNotFound) {
		return fmt.Errorf("petal %s not found", id)
	}
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// preview collapses whitespace and cuts s to at most n runes.
func preview(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

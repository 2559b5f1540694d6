package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"logbook/internal/logger"
)

func newViewCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Render a tabular log file as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read log file: %w", err)
			}
			if plain || !stdoutIsTerminal() {
				cmd.Print(string(data))
				return nil
			}
			rows := parseTabular(string(data))
			if len(rows) == 0 {
				cmd.Println("no records")
				return nil
			}
			cmd.Println(renderTable([]string{"TIME", "PRIORITY", "FILE", "LINE", "MESSAGE"}, rows, 3))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print raw records instead of a table")
	return cmd
}

// parseTabular splits tabular-preset output into table rows, skipping the
// header record. Unix timestamps are rewritten as RFC 3339; anything that
// does not parse is kept verbatim so malformed lines stay visible.
func parseTabular(content string) [][]string {
	header := strings.TrimSuffix(logger.TabularHeader, "\n")
	var rows [][]string
	for _, line := range strings.Split(content, "\n") {
		if line == "" || line == header {
			continue
		}
		fields := strings.SplitN(line, ",", 5)
		for len(fields) < 5 {
			fields = append(fields, "")
		}
		if unix, err := strconv.ParseInt(fields[0], 10, 64); err == nil {
			fields[0] = time.Unix(unix, 0).UTC().Format(time.RFC3339)
		}
		rows = append(rows, fields)
	}
	return rows
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

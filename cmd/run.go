package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/styletools/style-logger/stylelog"
)

var showHistory bool

var runCmd = &cobra.Command{
	Use:   "run [script...]",
	Short: "Replay log scripts through the logger",
	Long: `Replay one or more log scripts through the logger, or stdin when no
script is given. Each non-empty line is "LEVEL message"; lines starting
with # or // are comments. The command exits 1 if any message reached
the error channel.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var errorCount int
		stylelog.Init(stylelog.Config{
			MinimumLevel: minimumLevel,
			Colorize:     true,
			OnError:      func(stylelog.Level, string) { errorCount++ },
		})

		if len(args) == 0 {
			if err := replay(os.Stdin); err != nil {
				return err
			}
		}
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open script %s: %w", path, err)
			}
			err = replay(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("read script %s: %w", path, err)
			}
		}

		if showHistory {
			fmt.Println(stylelog.RenderHistory())
		}

		if errorCount > 0 {
			fmt.Println(color.RedString("✗") + fmt.Sprintf(" compile failed: %d error(s)", errorCount))
			os.Exit(1)
		}
		fmt.Println(color.GreenString("✓") + " compile clean")
		return nil
	},
}

// replay feeds each script line to the logger as a Log call.
func replay(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		level, message, _ := strings.Cut(line, " ")
		stylelog.Log(level, strings.TrimSpace(message))
	}
	return scanner.Err()
}

func init() {
	runCmd.Flags().BoolVar(&showHistory, "history", false,
		"render the accumulated history block after the run")
	rootCmd.AddCommand(runCmd)
}

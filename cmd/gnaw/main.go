package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gnaw/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gnaw",
	Short: "Binary and textual number decoding toolkit",
	Long:  `Gnaw decodes binary records and numeric literals with exact, byte-accurate semantics`,
}

// main registers subcommands and persistent flags, then executes the root
// command. A command error exits with status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(floatCmd)
	rootCmd.AddCommand(hexCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("jobs", 0, "parallel decode jobs (0 = all CPUs)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

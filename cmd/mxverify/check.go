package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var outputFile string

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check addresses from a newline-delimited file",
	Long: `Reads one email address per line from the given file, checks every
address, and prints "address: status" lines to standard output.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&outputFile, "out", "o", "", "also write results to this file")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	addresses, err := readAddresses(args[0])
	if err != nil {
		return err
	}

	log.Info().Int("addresses", len(addresses)).Msg("starting batch check")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results := newVerifier().CheckAll(ctx, addresses)

	lines := make([]string, 0, len(results))
	for _, res := range results {
		line := fmt.Sprintf("%s: %s", res.Address, res.Status.Message())
		fmt.Println(line)
		lines = append(lines, line)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		log.Info().Str("path", outputFile).Msg("results written")
	}

	return nil
}

// readAddresses loads newline-delimited addresses from path, skipping
// blank lines.
func readAddresses(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	var addresses []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			addresses = append(addresses, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	return addresses, nil
}

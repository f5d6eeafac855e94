package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkordes/parcel-intake/internal/classifier"
)

type classifyOutput struct {
	Name       string            `json:"name"`
	Address    string            `json:"address"`
	Confidence string            `json:"confidence"`
	Lines      []classifier.Line `json:"lines,omitempty"`
}

func classifyCmd() *cobra.Command {
	var (
		asJSON  bool
		explain bool
	)
	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Classify recognized label lines into recipient name and address",
		Long: "Reads one recognized text line per input line from file, or from stdin\n" +
			"when file is omitted or \"-\", and prints the classification.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			lines, err := readLines(in)
			if err != nil {
				return err
			}

			result := classifier.Classify(lines)
			out := classifyOutput{
				Name:       result.Name,
				Address:    result.Address,
				Confidence: string(result.Confidence),
			}
			if explain {
				out.Lines = classifier.Analyze(lines)
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			return printText(w, out)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	cmd.Flags().BoolVar(&explain, "explain", false, "show how each line was classified")
	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

func printText(w io.Writer, out classifyOutput) error {
	if _, err := fmt.Fprintf(w, "name:       %s\naddress:    %s\nconfidence: %s\n",
		out.Name, out.Address, out.Confidence); err != nil {
		return err
	}
	for _, l := range out.Lines {
		rules := ""
		if len(l.Rules) > 0 {
			rules = " (" + strings.Join(l.Rules, ", ") + ")"
		}
		if _, err := fmt.Fprintf(w, "  %-8s %s%s\n", l.Kind, l.Text, rules); err != nil {
			return err
		}
	}
	return nil
}

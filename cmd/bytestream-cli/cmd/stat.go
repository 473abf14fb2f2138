package cmd

import (
	"fmt"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"

	"github.com/backbone81/byte-stream/pkg/bytestream"
)

var statJSON bool

// statReport holds the byte statistics of a single pass over a file.
type statReport struct {
	Total     int64 `json:"total"`
	Printable int64 `json:"printable"`
	Control   int64 `json:"control"`
	HighBit   int64 `json:"highBit"`
	Nul       int64 `json:"nul"`
	Lines     int64 `json:"lines"`
}

// statCmd represents the stat command.
var statCmd = &cobra.Command{
	Use:          "stat <file>",
	Short:        "Provides byte statistics about the file.",
	Long:         `Provides byte statistics about the file.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := openSource(args[0])
		if err != nil {
			return err
		}
		defer func() {
			if err := source.Close(); err != nil {
				fmt.Println(err)
			}
		}()

		reader, err := bytestream.NewReaderSize(source, bufferSize)
		if err != nil {
			return err
		}

		report, err := bytestream.Run(reader, func(reader *bytestream.Reader) statReport {
			var report statReport
			for reader.Next() {
				value := reader.Value()
				report.Total++
				switch {
				case value == 0:
					report.Nul++
				case value >= 0x80:
					report.HighBit++
				case value >= 0x20 && value < 0x7f:
					report.Printable++
				default:
					report.Control++
				}
				if value == '\n' {
					report.Lines++
				}
			}
			return report
		})
		if err != nil {
			return fmt.Errorf("reading %q: %w", args[0], err)
		}

		if statJSON {
			output, err := json.Marshal(report)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", output)
			return nil
		}

		fmt.Printf("File:      %s\n", args[0])
		fmt.Printf("Total:     %d\n", report.Total)
		fmt.Printf("Printable: %d\n", report.Printable)
		fmt.Printf("Control:   %d\n", report.Control)
		fmt.Printf("High Bit:  %d\n", report.HighBit)
		fmt.Printf("NUL:       %d\n", report.Nul)
		fmt.Printf("Lines:     %d\n", report.Lines)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statCmd)

	statCmd.Flags().BoolVarP(
		&statJSON,
		"json",
		"j",
		false,
		"Output the statistics as JSON.",
	)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backbone81/byte-stream/pkg/bytestream"
)

// countCmd represents the count command.
var countCmd = &cobra.Command{
	Use:          "count <file>",
	Short:        "Counts the bytes in the file.",
	Long:         `Counts the bytes in the file.`,
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

		count, err := bytestream.Run(reader, func(reader *bytestream.Reader) int64 {
			for reader.Next() {
			}
			return reader.Offset()
		})
		if err != nil {
			return fmt.Errorf("reading %q: %w", args[0], err)
		}
		fmt.Printf("%d\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}

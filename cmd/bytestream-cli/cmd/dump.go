package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/backbone81/byte-stream/pkg/bytestream"
)

// dumpCmd represents the dump command.
var dumpCmd = &cobra.Command{
	Use:          "dump <file>",
	Short:        "Streams the file byte by byte to stdout.",
	Long:         `Streams the file byte by byte to stdout.`,
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

		output := bufio.NewWriter(os.Stdout)
		for reader.Next() {
			if err := output.WriteByte(reader.Value()); err != nil {
				return err
			}
		}
		if err := output.Flush(); err != nil {
			return err
		}
		if err := reader.Err(); err != nil {
			return fmt.Errorf("reading %q: %w", args[0], err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

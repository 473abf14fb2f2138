package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"

	"github.com/backbone81/byte-stream/pkg/bytestream"
)

var (
	bufferSize int
	useGzip    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bytestream-cli",
	Short: "A tool for streaming files byte by byte.",
	Long:  `A tool for streaming files byte by byte.`,
	// RunE: func(cmd *cobra.Command, args []string) error {
	//	return nil
	// },
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(
		&bufferSize,
		"buffer-size",
		"b",
		bytestream.DefaultBufferSize,
		"The buffer size in bytes to use for reading.",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&useGzip,
		"gzip",
		"z",
		false,
		"Decompress the file with gzip while reading.",
	)
}

// openSource opens the given file and wraps it in a gzip reader if requested.
func openSource(filePath string) (io.ReadCloser, error) {
	file, err := os.Open(filePath) //nolint:gosec // We can not validate paths in a CLI taking paths as arguments.
	if err != nil {
		return nil, err
	}
	if !useGzip {
		return file, nil
	}

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		if closeErr := file.Close(); closeErr != nil {
			return nil, errors.Join(err, closeErr)
		}
		return nil, err
	}
	return &gzipSource{
		Reader: gzipReader,
		file:   file,
	}, nil
}

// gzipSource bundles a gzip reader with the file it decompresses, so that closing the source closes both.
type gzipSource struct {
	*gzip.Reader
	file *os.File
}

func (s *gzipSource) Close() error {
	return errors.Join(s.Reader.Close(), s.file.Close())
}

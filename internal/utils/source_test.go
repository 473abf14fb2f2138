package utils_test

import (
	"bytes"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/backbone81/byte-stream/internal/utils"
)

var _ = Describe("SourceLoop", func() {
	It("should serve the same data over and over again", func() {
		source := utils.SourceLoop{
			Data: []byte("abc"),
		}

		result := make([]byte, 9)
		for i := range result {
			chunk := make([]byte, 1)
			n, err := source.Read(chunk)
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(1))
			result[i] = chunk[0]
		}
		Expect(result).To(Equal([]byte("abcabcabc")))
	})

	It("should not serve more than the remaining data per read", func() {
		source := utils.SourceLoop{
			Data: []byte("abcde"),
		}

		chunk := make([]byte, 4)
		Expect(source.Read(chunk)).To(Equal(4))
		Expect(source.Read(chunk)).To(Equal(1))
		Expect(chunk[0]).To(Equal(byte('e')))
	})
})

var _ = Describe("CountingSource", func() {
	It("should count reads and bytes", func() {
		source := utils.NewCountingSource(bytes.NewReader([]byte("abcdefgh")))

		chunk := make([]byte, 3)
		Expect(source.Read(chunk)).To(Equal(3))
		Expect(source.Read(chunk)).To(Equal(3))
		Expect(source.Read(chunk)).To(Equal(2))
		Expect(source.ReadCalls()).To(Equal(3))
		Expect(source.BytesRead()).To(Equal(8))

		_, err := source.Read(chunk)
		Expect(err).To(MatchError(io.EOF))
		Expect(source.ReadCalls()).To(Equal(4))
		Expect(source.BytesRead()).To(Equal(8))
	})
})

var _ = Describe("FailingSource", func() {
	It("should succeed up to the threshold and fail afterward", func() {
		source := utils.FailingSource{
			FailAfter: 17,
		}

		chunk := make([]byte, 8)
		Expect(source.Read(chunk)).To(Equal(8))
		Expect(source.Read(chunk)).To(Equal(8))

		_, err := source.Read(chunk)
		Expect(err).To(MatchError(utils.ErrSourceFailed))

		_, err = source.Read(chunk)
		Expect(err).To(MatchError(utils.ErrSourceFailed))
	})
})

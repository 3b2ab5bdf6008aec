// This file is part of befunge - https://github.com/db47h/befunge
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

type flusher interface {
	Flush() error
}

type runeWriter interface {
	io.Writer
	WriteRune(r rune) (size int, err error)
}

type runeWriterWrapper struct {
	io.Writer
}

func (w *runeWriterWrapper) WriteRune(r rune) (size int, err error) {
	if r < utf8.RuneSelf && r >= 0 {
		return w.Writer.Write([]byte{byte(r)})
	}
	b := [utf8.UTFMax]byte{}
	l := utf8.EncodeRune(b[:], r)
	return w.Writer.Write(b[:l])
}

func (w *runeWriterWrapper) Flush() error {
	if f, ok := w.Writer.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// newWriter returns either w if it implements runeWriter or wraps it up into
// a runeWriterWrapper.
func newWriter(w io.Writer) runeWriter {
	switch ww := w.(type) {
	case nil:
		return nil
	case runeWriter:
		return ww
	default:
		return &runeWriterWrapper{w}
	}
}

// runeReaderWrapper wraps a basic reader into a io.RuneReader and io.Closer.
type runeReaderWrapper struct {
	io.Reader
}

func (r *runeReaderWrapper) ReadRune() (ret rune, size int, err error) {
	var (
		b = [utf8.UTFMax]byte{}
		i = 0
	)
	for i < utf8.UTFMax && err == nil && !utf8.FullRune(b[:i]) {
		var n int
		n, err = r.Reader.Read(b[i : i+1])
		i += n
	}
	if i == 0 {
		return 0, 0, err
	}
	ret, size = rune(b[0]), 1
	if ret >= utf8.RuneSelf {
		ret, size = utf8.DecodeRune(b[:i])
	}
	return ret, size, err
}

func (r *runeReaderWrapper) Close() error {
	if c, ok := r.Reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func newRuneReader(r io.Reader) io.RuneReader {
	switch rr := r.(type) {
	case nil:
		return nil
	case io.RuneReader:
		return rr
	default:
		return &runeReaderWrapper{r}
	}
}

type multiRuneReader struct {
	readers []io.RuneReader
}

func (mr *multiRuneReader) ReadRune() (r rune, size int, err error) {
	for len(mr.readers) > 0 {
		r, size, err = mr.readers[0].ReadRune()
		if size > 0 || err != io.EOF {
			if err == io.EOF {
				err = nil
			}
			return
		}
		// discard the reader and optionally close it
		if cl, ok := mr.readers[0].(io.Closer); ok {
			cl.Close()
		}
		mr.readers = mr.readers[1:]
	}
	return 0, 0, io.EOF
}

func (mr *multiRuneReader) pushReader(r io.Reader) {
	mr.readers = append([]io.RuneReader{newRuneReader(r)}, mr.readers...)
}

// PushInput sets r as the current input for the & and ~ instructions. When
// this reader reaches EOF, the previously pushed reader will be used.
func (i *Instance) PushInput(r io.Reader) {
	// dont use a multi reader unless necessary
	switch in := i.input.(type) {
	case nil:
		i.input = newRuneReader(r)
	case *multiRuneReader:
		in.pushReader(r)
	default:
		i.input = &multiRuneReader{[]io.RuneReader{newRuneReader(r), i.input}}
	}
}

// readChar reads a single character from the input. It returns -1 at end of
// input.
func (i *Instance) readChar() (Cell, error) {
	if i.input == nil {
		return -1, nil
	}
	r, size, err := i.input.ReadRune()
	if size > 0 {
		return Cell(r), nil
	}
	if err != nil && err != io.EOF {
		return 0, errors.Wrap(err, "read failed")
	}
	return -1, nil
}

// readNum reads a decimal integer from the input. Characters that cannot
// start a number are skipped, and the character that terminates the number is
// consumed. It returns -1 if the input ends before any digit is read.
func (i *Instance) readNum() (Cell, error) {
	if i.input == nil {
		return -1, nil
	}
	var (
		n      Cell
		neg    bool
		digits int
	)
loop:
	for {
		r, size, err := i.input.ReadRune()
		if size == 0 {
			if err != nil && err != io.EOF {
				return 0, errors.Wrap(err, "read failed")
			}
			break
		}
		switch {
		case r >= '0' && r <= '9':
			n = n*10 + Cell(r-'0')
			digits++
		case digits > 0:
			break loop
		case r == '-':
			neg = true
		default:
			neg = false
		}
	}
	if digits == 0 {
		return -1, nil
	}
	if neg {
		n = -n
	}
	return n, nil
}

func (i *Instance) writeNum(v Cell) error {
	i.numBuf = strconv.AppendInt(i.numBuf[:0], int64(v), 10)
	_, err := i.output.Write(i.numBuf)
	return errors.Wrap(err, "write failed")
}

func (i *Instance) writeChar(v Cell) error {
	_, err := i.output.WriteRune(rune(codePoint(v)))
	return errors.Wrap(err, "write failed")
}

func (i *Instance) flush() error {
	if f, ok := i.output.(flusher); ok {
		return errors.Wrap(f.Flush(), "flush failed")
	}
	return nil
}

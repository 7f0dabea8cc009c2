package reply

import (
	"errors"
	"fmt"
	"io"
)

var ErrInvalidType = errors.New("invalid reply type")

// Serializer writes values as plain text, one line per scalar.
type Serializer struct {
	writer io.Writer
}

func NewSerializer(w io.Writer) *Serializer {
	return &Serializer{writer: w}
}

func (s *Serializer) Serialize(v Value) error {
	switch v.Type {
	case Status, Line:
		return s.writeLine(v.Str)
	case Error:
		return s.writeLine("error: " + v.Str)
	case List:
		return s.writeList(v.Array, v.Numbered)
	default:
		return fmt.Errorf("%w: %c", ErrInvalidType, v.Type)
	}
}

func (s *Serializer) writeLine(str string) error {
	_, err := fmt.Fprintln(s.writer, str)
	return err
}

func (s *Serializer) writeList(array []Value, numbered bool) error {
	for i, elem := range array {
		if numbered && elem.Type == Line {
			if _, err := fmt.Fprintf(s.writer, "%d\t%s\n", i+1, elem.Str); err != nil {
				return err
			}
			continue
		}
		if err := s.Serialize(elem); err != nil {
			return err
		}
	}
	return nil
}

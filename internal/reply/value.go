package reply

type Type byte

const (
	Status Type = '+'
	Error  Type = '-'
	Line   Type = '$'
	List   Type = '*'
)

// Value is what a command hands back to the CLI. Err carries the underlying
// error of an Error value so the caller can pick an exit code.
type Value struct {
	Type     Type
	Str      string
	Array    []Value
	Numbered bool
	Err      error
}

func StatusValue(str string) Value {
	return Value{Type: Status, Str: str}
}

func ErrorValue(err error) Value {
	return Value{Type: Error, Str: err.Error(), Err: err}
}

func LineValue(str string) Value {
	return Value{Type: Line, Str: str}
}

func ListValue(values ...Value) Value {
	return Value{Type: List, Array: values}
}

// NumberedListValue renders each line with its 1-based position.
func NumberedListValue(lines []string) Value {
	values := make([]Value, 0, len(lines))
	for _, line := range lines {
		values = append(values, LineValue(line))
	}
	return Value{Type: List, Array: values, Numbered: true}
}

func OKValue() Value {
	return StatusValue("OK")
}

func (v Value) IsError() bool {
	return v.Type == Error
}

// Errors collects Err from v and any nested values.
func (v Value) Errors() []error {
	var errs []error
	if v.Err != nil {
		errs = append(errs, v.Err)
	}
	for _, elem := range v.Array {
		errs = append(errs, elem.Errors()...)
	}
	return errs
}
